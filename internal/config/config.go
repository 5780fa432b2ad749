package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"Stairwell/internal/logging"
)

const defaultDSN = "user=postgres dbname=postgres password=password sslmode=disable"

type Config struct {
	Addr        string
	TLSCert     string
	TLSKey      string
	DatabaseURL string
	TokenKey    []byte
	RateLimit   rate.Limit
	RateBurst   int
	LogLevel    slog.Level
}

// TLS reports whether both certificate files are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		Addr:        getenv("ADDR", ":8443"),
		TLSCert:     os.Getenv("TLS_CERT"),
		TLSKey:      os.Getenv("TLS_KEY"),
		DatabaseURL: withSSLMode(getenv("DATABASE_URL", defaultDSN)),
		TokenKey:    []byte(os.Getenv("TOKEN_KEY")),
	}

	limit, err := strconv.ParseFloat(getenv("RATE_LIMIT", "1"), 64)
	if err != nil || limit <= 0 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT %q", os.Getenv("RATE_LIMIT"))
	}
	cfg.RateLimit = rate.Limit(limit)

	cfg.RateBurst, err = strconv.Atoi(getenv("RATE_BURST", "3"))
	if err != nil || cfg.RateBurst <= 0 {
		return Config{}, fmt.Errorf("invalid RATE_BURST %q", os.Getenv("RATE_BURST"))
	}

	cfg.LogLevel, err = logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RequireToken fails when no signing key is configured.
func (c Config) RequireToken() error {
	if len(c.TokenKey) == 0 {
		return errors.New("TOKEN_KEY environment variable is not set")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func withSSLMode(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return dsn + "&sslmode=require"
		}
		return dsn + "?sslmode=require"
	}
	return dsn + " sslmode=require"
}
