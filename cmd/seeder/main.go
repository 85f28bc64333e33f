package main

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"estate_web/internal/adapters/observability"
	"estate_web/internal/domain"
	"estate_web/internal/shared"
	"estate_web/internal/staticdata"
	mysqlrepo "estate_web/internal/storage/mysql"
)

// seeder copies the bundled listings into MySQL so the mysql backend starts
// with the same catalog the site falls back to.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	workers := cfg.SeedWorkers
	if workers < 1 {
		workers = 1
	}

	dsn, err := mysqlrepo.NormalizeDSN(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid MYSQL_DSN")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	repo := mysqlrepo.New(db)
	listings := staticdata.Listings(domain.ListingFilters{})
	log.Info().Int("listings", len(listings)).Int("workers", workers).Msg("seeder starting")

	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)
	for i, l := range listings {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(position int, l domain.Listing) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertListing(ctx, position, l); err != nil {
				failed.Add(1)
				log.Warn().Str("slug", l.Slug).Err(err).Msg("upsert failed")
				return
			}
			log.Info().Str("slug", l.Slug).Int("position", position).Msg("upsert ok")
		}(i, l)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Error().Int32("failed", n).Msg("seeding incomplete")
		os.Exit(1)
	}
	log.Info().Msg("seeding completed")
}
