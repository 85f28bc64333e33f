package mysql_test

import (
	"testing"
	"time"

	driver "github.com/go-sql-driver/mysql"

	mysqlrepo "estate_web/internal/storage/mysql"
)

func TestNormalizeDSN(t *testing.T) {
	cases := []string{
		"estate:secret@tcp(db:3306)/estate",
		"estate:secret@tcp(db:3306)/estate?parseTime=false&loc=Local&multiStatements=true",
	}
	for _, in := range cases {
		out, err := mysqlrepo.NormalizeDSN(in)
		if err != nil {
			t.Fatalf("NormalizeDSN(%q): %v", in, err)
		}
		cfg, err := driver.ParseDSN(out)
		if err != nil {
			t.Fatalf("normalized dsn %q does not parse: %v", out, err)
		}
		if !cfg.ParseTime || cfg.Loc != time.UTC {
			t.Fatalf("%q -> %q: parseTime=%v loc=%v", in, out, cfg.ParseTime, cfg.Loc)
		}
		if cfg.User != "estate" || cfg.DBName != "estate" || cfg.Addr != "db:3306" {
			t.Fatalf("%q -> %q lost connection settings: %+v", in, out, cfg)
		}
	}
	if _, err := mysqlrepo.NormalizeDSN("not a dsn"); err == nil {
		t.Fatalf("expected error for malformed dsn")
	}
}
