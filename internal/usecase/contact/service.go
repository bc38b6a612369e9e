// Package contact provides use cases for the public contact form.
// Messages are plain CRUD records with no derived fields: create validates
// presence of the required fields and persists, list returns everything for
// the admin view.
package contact

import (
	"context"
	"fmt"
	"time"

	"marketing-cms/internal/domain/entity"
	"marketing-cms/internal/repository"
)

// CreateInput represents an inbound contact form submission.
// Email is optional.
type CreateInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// Service provides contact message use cases.
type Service struct {
	Repo repository.ContactRepository
}

// Create validates and persists a contact message.
// Returns a ValidationError when name, phone or message is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.Name == "" {
		return &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.Phone == "" {
		return &entity.ValidationError{Field: "phone", Message: "is required"}
	}
	if in.Message == "" {
		return &entity.ValidationError{Field: "message", Message: "is required"}
	}

	now := time.Now()
	msg := &entity.ContactMessage{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// List retrieves all contact messages, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}
