// Package blog provides use cases for managing blog articles.
// It implements business logic for creating, updating, deleting and querying
// articles, including sanitization, slug derivation and the related-articles
// recommendation, and delegates persistence to the article repository.
package blog

import "errors"

// Sentinel errors for blog use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is empty or malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrInvalidSlug indicates that the provided slug is empty.
	ErrInvalidSlug = errors.New("invalid slug")

	// ErrDuplicateSlug indicates that an article with the same slug already
	// exists. Slug-based lookup returns a single article, so duplicates are
	// rejected at create time instead of silently shadowing each other.
	ErrDuplicateSlug = errors.New("article with this slug already exists")
)
