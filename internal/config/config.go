package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// SOP library
	SOPsDir string

	// Auth (endpoints are open when unset)
	APIKey string

	// PDF
	PDFFallbackPdftotext bool

	// Search
	SearchPreviewChars int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		SOPsDir: envOr("SOPS_DIR", "./sops"),

		APIKey: os.Getenv("SOPDEX_API_KEY"),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		SearchPreviewChars: envInt("SEARCH_PREVIEW_CHARS", 500),
	}

	if cfg.SearchPreviewChars <= 0 {
		cfg.SearchPreviewChars = 500
	}

	return cfg
}

func (c Config) Validate() error {
	if c.SOPsDir == "" {
		return fmt.Errorf("SOPS_DIR is required")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
