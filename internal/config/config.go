package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the web process reads from the environment.
// Secrets and endpoints come from env vars (.env in dev via godotenv);
// storefront chrome comes from an optional site.yaml (see site.go).
type Config struct {
	Env  string // "development" | "production"
	Port int

	APIBaseURL   string
	APITimeout   time.Duration
	APIRetryMax  int
	APIRetryBase time.Duration

	CookieSecret []byte
	CookieSecure bool

	Site Site
}

func FromEnv() (Config, error) {
	cfg := Config{
		Env:          envOr("APP_ENV", "development"),
		Port:         8080,
		APIBaseURL:   os.Getenv("API_BASE_URL"),
		APITimeout:   15 * time.Second,
		APIRetryMax:  3,
		APIRetryBase: 200 * time.Millisecond,
		CookieSecure: envOr("APP_ENV", "development") == "production",
	}

	if v := os.Getenv("PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 65535 {
			return Config{}, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = n
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("API_BASE_URL environment variable is required")
	}

	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid API_TIMEOUT: %q", v)
		}
		cfg.APITimeout = d
	}

	if v := os.Getenv("API_RETRY_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid API_RETRY_MAX: %q", v)
		}
		cfg.APIRetryMax = n
	}

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		if cfg.Env == "production" {
			return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required in production")
		}
		secret = "dev-only-cookie-secret"
	}
	cfg.CookieSecret = []byte(secret)

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v == "1" || v == "true"
	}

	site, err := LoadSite(envOr("SITE_CONFIG", "site.yaml"))
	if err != nil {
		return Config{}, err
	}
	cfg.Site = site

	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
