package contact

import (
	"net/http"

	"marketing-cms/internal/handler/http/auth"
	contactUC "marketing-cms/internal/usecase/contact"
)

// Register registers contact form HTTP handlers with the given mux.
// Submitting is public; reading submissions requires an admin JWT.
func Register(mux *http.ServeMux, svc *contactUC.Service) {
	mux.Handle("POST   /contact", CreateHandler{svc})
	mux.Handle("GET    /contact/admin", auth.RequireAdmin(ListHandler{svc}))
}
