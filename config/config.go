package config

import (
	"strconv"
	"time"

	"github.com/qs-lzh/movie-catalog/internal/util"
)

type Config struct {
	DatabaseDSN string
	Addr        string
	CacheURL    string
	MQURL       string

	JWTSecret  string
	JWTExpiry  time.Duration
	BcryptCost int
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	databaseDSN := util.GetEnv("DATABASE_DSN", "")
	addr := util.GetEnv("ADDR", ":4000")
	cacheURL := util.GetEnv("CACHE_URL", "")
	mqURL := util.GetEnv("RABBIT_MQ_URL", "")

	// An empty JWT_SECRET is a deployment misconfiguration, not "no auth":
	// tokens are still signed, with a dev-only fallback secret.
	jwtSecret := util.GetEnv("JWT_SECRET", "dev-secret-do-not-use-in-production")

	jwtExpiry := 24 * time.Hour
	if raw := util.GetEnv("JWT_EXPIRY", ""); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			jwtExpiry = parsed
		}
	}

	bcryptCost := 10
	if raw := util.GetEnv("BCRYPT_COST", ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 10 {
			bcryptCost = parsed
		}
	}

	return &Config{
		DatabaseDSN: databaseDSN,
		Addr:        addr,
		CacheURL:    cacheURL,
		MQURL:       mqURL,
		JWTSecret:   jwtSecret,
		JWTExpiry:   jwtExpiry,
		BcryptCost:  bcryptCost,
	}, nil
}
