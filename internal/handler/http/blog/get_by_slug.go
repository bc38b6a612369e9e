package blog

import (
	"net/http"

	"marketing-cms/internal/handler/http/pathutil"
	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

type GetBySlugHandler struct{ Svc *blogUC.Service }

func (h GetBySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sl, err := pathutil.Param(r, "slug")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.GetBySlug(r.Context(), sl)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}
