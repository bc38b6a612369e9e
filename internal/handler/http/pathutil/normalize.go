package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/blogs/slug/[^/]+$`), Template: "/blogs/slug/:slug"},
	{Pattern: regexp.MustCompile(`^/blogs/[^/]+/related$`), Template: "/blogs/:slug/related"},
	{Pattern: regexp.MustCompile(`^/blogs/[^/]+$`), Template: "/blogs/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs or slugs (e.g., /blogs/64f1...) to template format
// (e.g., /blogs/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/blogs/64f1c9e2ab34cd56ef789012")  // "/blogs/:id"
//	NormalizePath("/blogs/slug/summer-menu")          // "/blogs/slug/:slug"
//	NormalizePath("/blogs/summer-menu/related")       // "/blogs/:slug/related"
//	NormalizePath("/blogs")                           // "/blogs" (unchanged)
//	NormalizePath("/sitemap.xml")                     // "/sitemap.xml" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/blogs/64f1c9e2ab34cd56ef789012?x=1")  // "/blogs/:id"
//	NormalizePath("/blogs/64f1c9e2ab34cd56ef789012/")     // "/blogs/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// static paths like /health, /metrics, /sitemap.xml pass through
	return path
}
