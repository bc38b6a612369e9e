// Package repository declares the persistence capabilities consumed by the
// use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"marketing-cms/internal/domain/entity"
)

// ArticleRepository is the document-store capability for articles.
// Lookup methods return (nil, nil) when no document matches; the use case
// layer maps that to its not-found error.
type ArticleRepository interface {
	// Create persists a new article and assigns its ID.
	Create(ctx context.Context, article *entity.Article) error
	Get(ctx context.Context, id string) (*entity.Article, error)
	// GetBySlug returns the first article whose slug matches. Slugs are kept
	// unique by a store-level index, so first-match equals only-match.
	GetBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// List returns all articles ordered by creation time, newest first.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByCategory returns all articles in a category in the store's
	// natural query order.
	ListByCategory(ctx context.Context, category string) ([]*entity.Article, error)
	// ListRecent returns at most limit articles ordered by creation time,
	// newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}
