package blog

import (
	"net/http"

	"marketing-cms/internal/handler/http/pathutil"
	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

type GetHandler struct{ Svc *blogUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Param(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}
