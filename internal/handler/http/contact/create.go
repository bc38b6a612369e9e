// Package contact provides HTTP handlers for contact form endpoints.
package contact

import (
	"encoding/json"
	"net/http"

	"marketing-cms/internal/handler/http/respond"
	"marketing-cms/internal/observability/metrics"
	contactUC "marketing-cms/internal/usecase/contact"
)

type CreateHandler struct{ Svc *contactUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Create(r.Context(), contactUC.CreateInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	metrics.RecordContactMessage()
	respond.JSON(w, http.StatusCreated, map[string]string{"message": "contact message received"})
}
