package etscore

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Environment variable names
const (
	envBaseURL         = "ETSCORE_BASE_URL"
	envAuthToken       = "ETSCORE_AUTH_TOKEN" // #nosec G101 -- env var name, not actual secret
	envAcceptLanguage  = "ETSCORE_ACCEPT_LANGUAGE"
	envCurrency        = "ETSCORE_CURRENCY"
	envContentLanguage = "ETSCORE_CONTENT_LANGUAGE"
	envFeedID          = "ETSCORE_FEED_ID"
	envSearchLimit     = "ETSCORE_SEARCH_LIMIT"
	envSearchOffset    = "ETSCORE_SEARCH_OFFSET"
	envTimeout         = "ETSCORE_TIMEOUT"
)

// Defaults mirror the production feed configuration.
const (
	defaultAcceptLanguage  = "tr-TR"
	defaultCurrency        = "TRY"
	defaultContentLanguage = "es"
	defaultFeedID          = "1714d37c-2a14-460d-8344-cdff5cf02018"
	defaultSearchLimit     = 5
	defaultSearchOffset    = 300
	defaultTimeout         = 30 * time.Second
)

// Config holds ETS Score API connection settings. All fields are read-only
// after startup; tool invocations never mutate it.
type Config struct {
	// BaseURL is the vendor API root (e.g. https://api.example.com)
	BaseURL string

	// AuthToken is the static bearer credential forwarded on every request
	AuthToken string

	// AcceptLanguage is sent as the Accept-Language header
	AcceptLanguage string

	// Currency is sent as the X-Currency header
	Currency string

	// ContentLanguage selects the language segment of the hotel-detail path
	ContentLanguage string

	// FeedID identifies the vendor data feed queried by hotel search;
	// not user-supplied
	FeedID string

	// SearchLimit and SearchOffset form the fixed result window injected
	// into every search request
	SearchLimit  int
	SearchOffset int

	// Timeout bounds every upstream request
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv(envBaseURL)
	if baseURL == "" {
		return nil, errors.New(envBaseURL + " environment variable is required")
	}

	cfg := &Config{
		BaseURL:         baseURL,
		AuthToken:       os.Getenv(envAuthToken),
		AcceptLanguage:  defaultAcceptLanguage,
		Currency:        defaultCurrency,
		ContentLanguage: defaultContentLanguage,
		FeedID:          defaultFeedID,
		SearchLimit:     defaultSearchLimit,
		SearchOffset:    defaultSearchOffset,
		Timeout:         defaultTimeout,
	}

	if v := os.Getenv(envAcceptLanguage); v != "" {
		cfg.AcceptLanguage = v
	}
	if v := os.Getenv(envCurrency); v != "" {
		cfg.Currency = v
	}
	if v := os.Getenv(envContentLanguage); v != "" {
		cfg.ContentLanguage = v
	}
	if v := os.Getenv(envFeedID); v != "" {
		cfg.FeedID = v
	}
	if v := os.Getenv(envSearchLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SearchLimit = n
		}
	}
	if v := os.Getenv(envSearchOffset); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SearchOffset = n
		}
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg, nil
}

// HasCredentials returns true if a bearer token is configured.
func (c *Config) HasCredentials() bool {
	return c.AuthToken != ""
}
