package config

import (
	"os"
	"strconv"
)

const (
	// DefaultFetchTimeoutSec is seconds allowed per upstream portal call.
	DefaultFetchTimeoutSec = 10
	// DefaultScheduleCacheTTLSec is seconds a merged schedule stays cached.
	DefaultScheduleCacheTTLSec = 60
	// DefaultDocCacheTTLSec is seconds a raw upstream document stays cached.
	DefaultDocCacheTTLSec = 120
	// DefaultRealPeriodMax is the highest numeric period label that counts as
	// an actual class (roll call, recess and transitions fall outside it).
	DefaultRealPeriodMax = 5
)

type Config struct {
	Port             string
	PortalBaseURL    string // student portal host, tried first
	APIBaseURL       string // API host, tried when the portal fails
	PortalToken      string // bearer token from the auth service
	RedisURL         string // empty disables the document cache
	FetchTimeout     int    // seconds per upstream call
	ScheduleCacheTTL int    // seconds merged responses stay cached
	DocCacheTTL      int    // seconds raw upstream documents stay cached
	RealPeriodMax    int    // highest numeric period label counted as a class
	VerboseLogging   bool
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		PortalBaseURL:    getEnv("PORTAL_BASE_URL", "https://student.sbhs.net.au/api"),
		APIBaseURL:       getEnv("API_BASE_URL", "https://api.sbhs.net.au/api"),
		PortalToken:      getEnv("PORTAL_TOKEN", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		FetchTimeout:     getEnvInt("FETCH_TIMEOUT", DefaultFetchTimeoutSec),
		ScheduleCacheTTL: getEnvInt("SCHEDULE_CACHE_TTL", DefaultScheduleCacheTTLSec),
		DocCacheTTL:      getEnvInt("DOC_CACHE_TTL", DefaultDocCacheTTLSec),
		RealPeriodMax:    getEnvInt("REAL_PERIOD_MAX", DefaultRealPeriodMax),
		VerboseLogging:   getEnvBool("VERBOSE_LOGGING", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
