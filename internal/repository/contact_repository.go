package repository

import (
	"context"

	"marketing-cms/internal/domain/entity"
)

// ContactRepository is the document-store capability for contact messages.
type ContactRepository interface {
	// Create persists a new contact message and assigns its ID.
	Create(ctx context.Context, msg *entity.ContactMessage) error
	// List returns all contact messages ordered by creation time, newest first.
	List(ctx context.Context) ([]*entity.ContactMessage, error)
}
