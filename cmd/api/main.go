package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	server "estate_web/internal/adapters/http_server"
	"estate_web/internal/adapters/listingsapi"
	"estate_web/internal/adapters/observability"
	redisad "estate_web/internal/adapters/redis"
	"estate_web/internal/app"
	"estate_web/internal/auth"
	"estate_web/internal/domain"
	"estate_web/internal/locale"
	"estate_web/internal/shared"
	mysqlrepo "estate_web/internal/storage/mysql"
)

const formPostsPerMinute = 10

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	var (
		remote domain.ListingsService
		store  domain.EnquiryStore
		recent domain.EnquiryLister
		cache  domain.Cache
	)

	// db is optional: without it enquiries are logged and the mysql backend is unavailable
	var repo *mysqlrepo.Repo
	if db := openMySQL(ctx, cfg.MySQLDSN); db != nil {
		defer db.Close()
		repo = mysqlrepo.New(db)
		store, recent = repo, repo
	}

	switch cfg.ListingsBackend {
	case shared.BackendAPI:
		c := listingsapi.New(cfg.ListingsAPIURL, cfg.ListingsAPIKey, cfg.ListingsAPIRPS)
		if !c.Configured() {
			log.Warn().Msg("LISTINGS_API_URL or LISTINGS_API_KEY missing, serving bundled listings")
		}
		remote = c
	case shared.BackendMySQL:
		if repo == nil {
			log.Warn().Msg("mysql listings backend selected without a database, serving bundled listings")
		} else {
			remote = repo
		}
	}

	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, caching disabled")
			_ = rc.Close()
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	listings := app.NewListingsRepository(remote, cache, cfg.CacheTTL)
	log.Info().Str("source", listings.Source()).Msg("listings repository ready")

	tr, err := locale.NewTranslator()
	if err != nil {
		log.Fatal().Err(err).Msg("load message catalog")
	}

	secret := cfg.SessionSecret
	if secret == "" {
		log.Warn().Msg("SESSION_SECRET not set, admin sessions will not survive a restart")
		secret = uuid.NewString() + uuid.NewString()
	}
	sessions := auth.NewSessions(secret, cfg.SessionTTL, cfg.Production())
	resolver := locale.Resolver{CountryHeader: cfg.CountryHeader}

	// http
	srv := server.New(server.SiteRouting{
		Resolver:      resolver,
		Sessions:      sessions,
		CanonicalHost: cfg.CanonicalHost,
		Production:    cfg.Production(),
	}.Handler)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Listings:      listings,
		Enquiries:     app.NewEnquiryService(listings, store),
		Translator:    tr,
		Resolver:      resolver,
		Sessions:      sessions,
		Admin:         auth.Credentials{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash},
		Recent:        recent,
		FeaturedLimit: cfg.FeaturedLimit,
		FormRate:      formPostsPerMinute,
	})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("site listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func openMySQL(ctx context.Context, dsn string) *sql.DB {
	if dsn == "" {
		return nil
	}
	dsn, err := mysqlrepo.NormalizeDSN(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("invalid MYSQL_DSN, continuing without database")
		return nil
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Warn().Err(err).Msg("sql.Open failed")
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Msg("db.Ping failed, continuing without database")
		_ = db.Close()
		return nil
	}
	log.Info().Msg("database connection ok")
	return db
}
