// Package config loads jobdeck configuration from environment variables.
//
// Loading order: built-in defaults first, then JOBDECK_* environment
// variables override individual keys. Config is immutable after Load and
// safe for concurrent reads.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from environment variables before mapping them to
// config keys: JOBDECK_API_URL -> api_url.
const envPrefix = "JOBDECK_"

// Config holds all client configuration.
type Config struct {
	// APIURL is the backend base URL all relative request paths resolve
	// against. JOBDECK_API_URL.
	APIURL string `koanf:"api_url"`
	// BaseURL is the web frontend URL used for the browser OAuth flow.
	// Derived from APIURL when unset (an api. host prefix is dropped).
	// JOBDECK_BASE_URL.
	BaseURL string `koanf:"base_url"`
	// HTTPTimeout bounds every API call. JOBDECK_HTTP_TIMEOUT.
	HTTPTimeout time.Duration `koanf:"http_timeout"`
	// PageSize is the number of jobs fetched per page. JOBDECK_PAGE_SIZE.
	PageSize int `koanf:"page_size"`
}

func defaultConfig() *Config {
	return &Config{
		APIURL:      "http://localhost:7600",
		HTTPTimeout: 30 * time.Second,
		PageSize:    10,
	}
}

// Load builds the configuration from defaults and environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if _, err := url.Parse(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("invalid api_url %q: %w", cfg.APIURL, err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = deriveBaseURL(cfg.APIURL)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	return cfg, nil
}

// deriveBaseURL guesses the web frontend URL from the API URL by dropping a
// leading "api." host label: https://api.jobdeck.dev -> https://jobdeck.dev.
func deriveBaseURL(apiURL string) string {
	u, err := url.Parse(apiURL)
	if err != nil {
		return apiURL
	}
	host := u.Hostname()
	port := u.Port()
	if strings.HasPrefix(host, "api.") {
		u.Host = strings.TrimPrefix(host, "api.")
		if port != "" {
			u.Host += ":" + port
		}
	}
	return u.String()
}
