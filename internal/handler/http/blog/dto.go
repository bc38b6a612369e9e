// Package blog provides HTTP handlers for blog article endpoints.
// It includes handlers for creating, listing, reading, updating, and deleting
// articles, plus the related-articles recommendation endpoint.
package blog

import (
	"errors"
	"net/http"
	"time"

	"marketing-cms/internal/domain/entity"
	blogUC "marketing-cms/internal/usecase/blog"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	Content         string    `json:"content"`
	Slug            string    `json:"slug"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:              a.ID,
		Title:           a.Title,
		Category:        a.Category,
		Content:         a.Content,
		Slug:            a.Slug,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, blogUC.ErrInvalidArticleID),
		errors.Is(err, blogUC.ErrInvalidSlug):
		return http.StatusBadRequest
	case errors.Is(err, blogUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, blogUC.ErrDuplicateSlug):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
