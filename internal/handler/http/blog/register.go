package blog

import (
	"errors"
	"net/http"

	"marketing-cms/internal/handler/http/auth"
	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

// Register registers all blog-related HTTP handlers with the given mux.
// Read endpoints are public; create, update, and delete require an admin JWT.
func Register(mux *http.ServeMux, svc *blogUC.Service) {
	mux.Handle("GET    /blogs", ListHandler{svc})
	mux.Handle("GET    /blogs/{id}", GetHandler{svc})
	// /blogs/slug/{slug} and /blogs/{slug}/related overlap on ServeMux
	// precedence rules, so both go through one two-segment pattern.
	mux.Handle("GET    /blogs/{first}/{second}", subresourceHandler{
		bySlug:  GetBySlugHandler{svc},
		related: RelatedHandler{svc},
	})

	mux.Handle("POST   /blogs", auth.RequireAdmin(CreateHandler{svc}))
	mux.Handle("PUT    /blogs/{id}", auth.RequireAdmin(UpdateHandler{svc}))
	mux.Handle("DELETE /blogs/{id}", auth.RequireAdmin(DeleteHandler{svc}))
}

// subresourceHandler routes GET /blogs/slug/{slug} and GET /blogs/{slug}/related.
type subresourceHandler struct {
	bySlug  http.Handler
	related http.Handler
}

func (h subresourceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	first := r.PathValue("first")
	second := r.PathValue("second")

	switch {
	case first == "slug":
		r.SetPathValue("slug", second)
		h.bySlug.ServeHTTP(w, r)
	case second == "related":
		r.SetPathValue("slug", first)
		h.related.ServeHTTP(w, r)
	default:
		respond.SafeError(w, http.StatusNotFound, errors.New("not found"))
	}
}
