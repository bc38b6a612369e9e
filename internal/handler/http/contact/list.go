package contact

import (
	"net/http"
	"time"

	"marketing-cms/internal/domain/entity"
	"marketing-cms/internal/handler/http/respond"
	contactUC "marketing-cms/internal/usecase/contact"
)

// DTO represents the JSON structure for contact message transfer.
type DTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(m *entity.ContactMessage) DTO {
	return DTO{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

type ListHandler struct{ Svc *contactUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, toDTO(m))
	}
	respond.JSON(w, http.StatusOK, out)
}
