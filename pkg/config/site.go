package config

import (
	"log/slog"
	"strings"
)

const (
	defaultBaseURL    = "http://localhost:8080"
	defaultExcerptMax = 160

	// sane bounds for search snippet length
	minExcerptMax = 50
	maxExcerptMax = 320
)

// SiteConfig holds site-wide settings used by content and sitemap generation.
type SiteConfig struct {
	// BaseURL is the public origin of the site, without a trailing slash.
	BaseURL string
	// ExcerptMax bounds auto-generated meta descriptions, in characters.
	ExcerptMax int
}

// LoadSiteConfig reads site settings from the environment.
// SITE_BASE_URL sets the public origin; EXCERPT_MAX_LENGTH overrides the
// meta description bound and is clamped to a sane range.
func LoadSiteConfig() SiteConfig {
	base := strings.TrimRight(GetEnvString("SITE_BASE_URL", defaultBaseURL), "/")

	excerptMax := GetEnvInt("EXCERPT_MAX_LENGTH", defaultExcerptMax)
	if excerptMax < minExcerptMax || excerptMax > maxExcerptMax {
		slog.Warn("EXCERPT_MAX_LENGTH out of range, using default",
			slog.Int("value", excerptMax),
			slog.Int("default", defaultExcerptMax))
		excerptMax = defaultExcerptMax
	}

	return SiteConfig{
		BaseURL:    base,
		ExcerptMax: excerptMax,
	}
}
