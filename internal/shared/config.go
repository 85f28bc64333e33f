package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	BackendStatic = "static"
	BackendAPI    = "api"
	BackendMySQL  = "mysql"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	CanonicalHost string
	CountryHeader string

	ListingsBackend string
	ListingsAPIURL  string
	ListingsAPIKey  string
	ListingsAPIRPS  int
	FeaturedLimit   int

	MySQLDSN  string
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	AdminEmail        string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration

	SeedWorkers int
}

func (c Config) Production() bool { return c.AppEnv == "prod" || c.AppEnv == "production" }

func Load() Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric setting")
		}
		return def
	}
	c := Config{
		AppEnv:            env("APP_ENV", "prod"),
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		MetricsAddr:       env("METRICS_ADDR", ""),
		CanonicalHost:     strings.ToLower(env("CANONICAL_HOST", "")),
		CountryHeader:     env("GEO_COUNTRY_HEADER", "X-Vercel-IP-Country"),
		ListingsBackend:   strings.ToLower(env("LISTINGS_BACKEND", BackendAPI)),
		ListingsAPIURL:    strings.TrimRight(env("LISTINGS_API_URL", ""), "/"),
		ListingsAPIKey:    env("LISTINGS_API_KEY", ""),
		ListingsAPIRPS:    atoi("LISTINGS_API_RPS", 10),
		FeaturedLimit:     atoi("FEATURED_LIMIT", 6),
		MySQLDSN:          env("MYSQL_DSN", ""),
		RedisAddr:         env("REDIS_ADDR", ""),
		RedisPass:         env("REDIS_PASSWORD", ""),
		RedisDB:           atoi("REDIS_DB", 0),
		CacheTTL:          time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		AdminEmail:        env("ADMIN_EMAIL", ""),
		AdminPasswordHash: env("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     env("SESSION_SECRET", ""),
		SessionTTL:        time.Duration(atoi("SESSION_TTL_SECONDS", 8*3600)) * time.Second,
		SeedWorkers:       atoi("SEED_WORKERS", 4),
	}

	switch c.ListingsBackend {
	case BackendAPI:
		if c.ListingsAPIURL == "" || c.ListingsAPIKey == "" {
			log.Warn().Msg("LISTINGS_API_URL or LISTINGS_API_KEY is empty; serving static listings")
		}
	case BackendMySQL:
		if c.MySQLDSN == "" {
			log.Warn().Msg("MYSQL_DSN is empty; serving static listings")
		}
	case BackendStatic:
	default:
		log.Warn().Str("backend", c.ListingsBackend).Msg("unknown LISTINGS_BACKEND; serving static listings")
		c.ListingsBackend = BackendStatic
	}
	if c.SessionSecret == "" {
		log.Warn().Msg("SESSION_SECRET is empty; a random per-process secret will sign admin sessions")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
