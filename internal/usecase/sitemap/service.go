// Package sitemap builds the XML sitemap served at /sitemap.xml.
// The document combines a fixed set of site routes with one entry per
// published article under /blog/{slug}.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"marketing-cms/internal/observability/tracing"
	"marketing-cms/internal/repository"
)

// xmlns required by the sitemaps.org protocol.
const urlsetNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

const blogEntryPriority = "0.85"

type urlEntry struct {
	XMLName  xml.Name `xml:"url"`
	Loc      string   `xml:"loc"`
	LastMod  string   `xml:"lastmod,omitempty"`
	Priority string   `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// staticRoute is a hand-maintained page outside the blog.
type staticRoute struct {
	path     string
	priority string
}

var staticRoutes = []staticRoute{
	{path: "/", priority: "1.0"},
	{path: "/about", priority: "0.80"},
	{path: "/services", priority: "0.90"},
	{path: "/menu", priority: "0.90"},
	{path: "/events/weddings", priority: "0.70"},
	{path: "/events/corporate", priority: "0.70"},
	{path: "/events/private-dining", priority: "0.70"},
	{path: "/contact", priority: "0.60"},
	{path: "/blog", priority: "0.80"},
}

// Service builds sitemaps from the article store.
type Service struct {
	Repo    repository.ArticleRepository
	BaseURL string
}

// Build renders the sitemap XML document, including the XML declaration.
// Static routes come first, then one entry per article ordered newest first.
// Articles without a slug are skipped.
func (s *Service) Build(ctx context.Context) (string, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "sitemap.build")
	defer span.End()

	articles, err := s.Repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list articles for sitemap: %w", err)
	}

	base := strings.TrimRight(s.BaseURL, "/")
	now := time.Now().Format(time.RFC3339)

	set := urlSet{Xmlns: urlsetNamespace}
	for _, r := range staticRoutes {
		set.URLs = append(set.URLs, urlEntry{
			Loc:      base + r.path,
			LastMod:  now,
			Priority: r.priority,
		})
	}
	for _, a := range articles {
		if a.Slug == "" {
			continue
		}
		mod := a.UpdatedAt
		if mod.IsZero() {
			mod = a.CreatedAt
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:      base + "/blog/" + a.Slug,
			LastMod:  mod.Format(time.RFC3339),
			Priority: blogEntryPriority,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sitemap: %w", err)
	}
	return xml.Header + string(body) + "\n", nil
}
