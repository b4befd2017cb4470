package etscore

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresBaseURL(t *testing.T) {
	t.Setenv("ETSCORE_BASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error when ETSCORE_BASE_URL is unset")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ETSCORE_BASE_URL", "https://api.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.BaseURL != "https://api.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.AcceptLanguage != "tr-TR" {
		t.Errorf("AcceptLanguage = %q, want tr-TR", cfg.AcceptLanguage)
	}
	if cfg.Currency != "TRY" {
		t.Errorf("Currency = %q, want TRY", cfg.Currency)
	}
	if cfg.ContentLanguage != "es" {
		t.Errorf("ContentLanguage = %q, want es", cfg.ContentLanguage)
	}
	if cfg.FeedID != "1714d37c-2a14-460d-8344-cdff5cf02018" {
		t.Errorf("FeedID = %q", cfg.FeedID)
	}
	if cfg.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want 5", cfg.SearchLimit)
	}
	if cfg.SearchOffset != 300 {
		t.Errorf("SearchOffset = %d, want 300", cfg.SearchOffset)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.HasCredentials() {
		t.Error("HasCredentials should be false without a token")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ETSCORE_BASE_URL", "https://api.example.com")
	t.Setenv("ETSCORE_AUTH_TOKEN", "secret")
	t.Setenv("ETSCORE_ACCEPT_LANGUAGE", "en-US")
	t.Setenv("ETSCORE_CURRENCY", "EUR")
	t.Setenv("ETSCORE_CONTENT_LANGUAGE", "en")
	t.Setenv("ETSCORE_FEED_ID", "custom-feed")
	t.Setenv("ETSCORE_SEARCH_LIMIT", "10")
	t.Setenv("ETSCORE_SEARCH_OFFSET", "0")
	t.Setenv("ETSCORE_TIMEOUT", "10s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.AuthToken != "secret" {
		t.Errorf("AuthToken = %q", cfg.AuthToken)
	}
	if cfg.AcceptLanguage != "en-US" {
		t.Errorf("AcceptLanguage = %q", cfg.AcceptLanguage)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q", cfg.Currency)
	}
	if cfg.ContentLanguage != "en" {
		t.Errorf("ContentLanguage = %q", cfg.ContentLanguage)
	}
	if cfg.FeedID != "custom-feed" {
		t.Errorf("FeedID = %q", cfg.FeedID)
	}
	if cfg.SearchLimit != 10 {
		t.Errorf("SearchLimit = %d", cfg.SearchLimit)
	}
	if cfg.SearchOffset != 0 {
		t.Errorf("SearchOffset = %d", cfg.SearchOffset)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if !cfg.HasCredentials() {
		t.Error("HasCredentials should be true with a token")
	}
}

func TestLoadConfigIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("ETSCORE_BASE_URL", "https://api.example.com")
	t.Setenv("ETSCORE_SEARCH_LIMIT", "zero")
	t.Setenv("ETSCORE_SEARCH_OFFSET", "-5")
	t.Setenv("ETSCORE_TIMEOUT", "soon")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	// Unparsable or out-of-range values fall back to defaults
	if cfg.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want default 5", cfg.SearchLimit)
	}
	if cfg.SearchOffset != 300 {
		t.Errorf("SearchOffset = %d, want default 300", cfg.SearchOffset)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
}
