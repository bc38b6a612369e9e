package blog

import (
	"net/http"

	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

type ListHandler struct{ Svc *blogUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
