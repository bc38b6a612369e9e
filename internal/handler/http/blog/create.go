package blog

import (
	"encoding/json"
	"net/http"

	"marketing-cms/internal/handler/http/respond"
	blogUC "marketing-cms/internal/usecase/blog"
)

type CreateHandler struct{ Svc *blogUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title           string `json:"title"`
		Category        string `json:"category"`
		Content         string `json:"content"`
		MetaTitle       string `json:"metaTitle"`
		MetaDescription string `json:"metaDescription"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Create(r.Context(), blogUC.CreateInput{
		Title:           req.Title,
		Category:        req.Category,
		Content:         req.Content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(article))
}
