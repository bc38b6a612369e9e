// Package sitemap serves the XML sitemap endpoint.
package sitemap

import (
	"log/slog"
	"net/http"
	"time"

	"marketing-cms/internal/observability/logging"
	"marketing-cms/internal/observability/metrics"
	sitemapUC "marketing-cms/internal/usecase/sitemap"
)

type Handler struct{ Svc *sitemapUC.Service }

// ServeHTTP renders the sitemap. Failures return a plain-text 500 since XML
// consumers do not expect a JSON error body.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := h.Svc.Build(r.Context())
	if err != nil {
		logger := logging.WithRequestID(r.Context(), slog.Default())
		logger.Error("failed to build sitemap", slog.Any("error", err))
		http.Error(w, "failed to generate sitemap", http.StatusInternalServerError)
		return
	}
	metrics.RecordSitemapBuild(time.Since(start))

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
