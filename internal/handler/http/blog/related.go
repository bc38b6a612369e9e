package blog

import (
	"net/http"

	"marketing-cms/internal/handler/http/pathutil"
	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

type RelatedHandler struct{ Svc *blogUC.Service }

func (h RelatedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sl, err := pathutil.Param(r, "slug")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	related, err := h.Svc.Related(r.Context(), sl)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(related))
}
