package blog

import (
	"net/http"

	"marketing-cms/internal/handler/http/pathutil"
	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

type DeleteHandler struct{ Svc *blogUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Param(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": "blog deleted successfully"})
}
