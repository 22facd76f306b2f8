// Package config reads process environment at startup and decides, once per
// process lifetime, whether a valid Primary Store connection exists.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// StoreState tells the services whether the Primary Store is reachable.
// Unconfigured switches the catalog permanently into fallback-only mode and
// makes review writes fail; it is re-evaluated only on restart.
type StoreState int

const (
	StoreUnconfigured StoreState = iota
	StoreConfigured
)

const dsnPlaceholder = "your-database-url-here"

type Config struct {
	Addr           string
	DatabaseDSN    string
	AllowedOrigins []string

	CacheTTL      time.Duration
	SeedQueries   []string
	BooksPerQuery int
	SeedDelay     time.Duration

	OpenLibraryUserAgent string

	// Issues lists why the store settings were rejected, for startup logging.
	Issues []string
}

// DefaultSeedQueries are the broad terms used to populate the catalog when
// the Primary Store is empty or unavailable.
var DefaultSeedQueries = []string{
	"bestseller",
	"classic literature",
	"science fiction",
	"fantasy",
	"mystery",
}

// Load reads .env.local (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load(".env.local")

	cfg := Config{
		Addr:                 getEnv("APP_ADDR", ":8080"),
		DatabaseDSN:          os.Getenv("DB_DSN"),
		CacheTTL:             5 * time.Minute,
		SeedQueries:          DefaultSeedQueries,
		BooksPerQuery:        20,
		SeedDelay:            time.Second,
		OpenLibraryUserAgent: getEnv("OPENLIBRARY_USER_AGENT", "kitapkesif/1.0"),
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	cfg.Issues = validateDSN(cfg.DatabaseDSN)
	return cfg
}

// StoreState returns StoreConfigured only when the DSN passed validation.
func (c Config) StoreState() StoreState {
	if len(c.Issues) == 0 {
		return StoreConfigured
	}
	return StoreUnconfigured
}

func validateDSN(dsn string) []string {
	var issues []string
	switch {
	case dsn == "":
		issues = append(issues, "DB_DSN is missing from the environment")
	case dsn == dsnPlaceholder:
		issues = append(issues, "DB_DSN still contains the placeholder value")
	case !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://"):
		issues = append(issues, "DB_DSN must be a postgres:// connection string")
	}
	return issues
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
