package mysql

import (
	"fmt"
	"time"

	driver "github.com/go-sql-driver/mysql"
)

// NormalizeDSN forces the driver options the repo scans depend on: DATETIME
// columns decode into time.Time in UTC.
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg.FormatDSN(), nil
}
