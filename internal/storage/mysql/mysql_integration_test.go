//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"estate_web/internal/domain"
	"estate_web/internal/staticdata"
	mysqlrepo "estate_web/internal/storage/mysql"
)

func pstr(s string) *string { return &s }

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=estate",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/estate?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_ListingsMatchStaticDataset(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	for i, l := range staticdata.Listings(domain.ListingFilters{}) {
		if err := repo.UpsertListing(ctx, i, l); err != nil {
			t.Fatalf("UpsertListing %s: %v", l.Slug, err)
		}
	}

	cat := domain.CategoryHomesSale
	minPrice := int64(5_000_000)
	cases := []domain.ListingFilters{
		{},
		{Category: &cat, MinPrice: &minPrice},
		{Featured: true},
		{Features: []string{"garden", "terrace"}},
		{Location: pstr("praha")},
	}
	for _, f := range cases {
		got, err := repo.ListAll(ctx, f)
		if err != nil {
			t.Fatalf("ListAll %s: %v", f.Key(), err)
		}
		want := staticdata.Listings(f)
		if len(got) != len(want) {
			t.Fatalf("%s: got %d listings, want %d", f.Key(), len(got), len(want))
		}
		for i := range want {
			if got[i].Slug != want[i].Slug {
				t.Fatalf("%s: position %d got %s want %s", f.Key(), i, got[i].Slug, want[i].Slug)
			}
		}
	}

	l, err := repo.GetBySlug(ctx, "family-villa-brno-zabovresky")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if l.Title.Cs == "" || l.AgentSlug != "jana-novakova" || len(l.Features) == 0 {
		t.Fatalf("unexpected listing: %+v", l)
	}
	for _, slug := range []string{"FAMILY-VILLA-BRNO-ZABOVRESKY", "Family-Villa-Brno-Zabovresky", "family-villa-brno-žabovresky"} {
		if _, err := repo.GetBySlug(ctx, slug); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetBySlug(%q) should not match, got %v", slug, err)
		}
		if _, ok := staticdata.Listing(slug); ok {
			t.Fatalf("static dataset matched %q", slug)
		}
	}
	if _, err := repo.GetBySlug(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	featured, err := repo.ListFeatured(ctx, 2)
	if err != nil {
		t.Fatalf("ListFeatured: %v", err)
	}
	want := staticdata.Featured(2)
	if len(featured) != 2 || featured[0].Slug != want[0].Slug || featured[1].Slug != want[1].Slug {
		t.Fatalf("unexpected featured: %+v", featured)
	}
}

func TestRepo_MySQL_Enquiries(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	for i, kind := range []domain.EnquiryKind{domain.EnquiryContact, domain.EnquiryViewing} {
		e := domain.Enquiry{
			ID:        fmt.Sprintf("00000000-0000-0000-0000-00000000000%d", i),
			Kind:      kind,
			Name:      "Karel",
			Email:     "karel@example.cz",
			Message:   "Dobrý den",
			Locale:    "cs",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if kind == domain.EnquiryViewing {
			e.ListingSlug = pstr("cottage-krkonose")
		}
		if err := repo.SaveEnquiry(ctx, e); err != nil {
			t.Fatalf("SaveEnquiry: %v", err)
		}
	}

	got, err := repo.RecentEnquiries(ctx, 10)
	if err != nil {
		t.Fatalf("RecentEnquiries: %v", err)
	}
	if len(got) != 2 || got[0].Kind != domain.EnquiryViewing {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if got[0].ListingSlug == nil || *got[0].ListingSlug != "cottage-krkonose" || got[1].ListingSlug != nil {
		t.Fatalf("listing slug round trip: %+v", got)
	}
}
