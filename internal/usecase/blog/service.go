package blog

import (
	"context"
	"fmt"
	"time"

	"marketing-cms/internal/domain/entity"
	"marketing-cms/internal/repository"
	"marketing-cms/internal/sanitize"
	"marketing-cms/internal/slug"
)

const (
	// defaultExcerptMax bounds the derived meta-description length when no
	// explicit limit is configured. Valid configured values are 150-160.
	defaultExcerptMax = 160

	// relatedLimit caps the related-articles result.
	relatedLimit = 3

	// recentWindow is how many newest articles the recency fallback considers.
	recentWindow = 5
)

// CreateInput represents the input parameters for creating a new article.
// MetaTitle and MetaDescription are optional; defaults are derived from
// Title and the sanitized Content respectively.
type CreateInput struct {
	Title           string
	Category        string
	Content         string
	MetaTitle       string
	MetaDescription string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated. The slug is never recomputed,
// even when Title changes.
type UpdateInput struct {
	ID              string
	Title           *string
	Category        *string
	Content         *string
	MetaTitle       *string
	MetaDescription *string
}

// Service provides blog article management use cases.
// It composes the slug generator and content sanitizer on the write path and
// delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository

	// ExcerptMax overrides the default meta-description length bound.
	ExcerptMax int
}

func (s *Service) excerptMax() int {
	if s.ExcerptMax > 0 {
		return s.ExcerptMax
	}
	return defaultExcerptMax
}

// Create validates the input, sanitizes the content, derives the slug and
// meta defaults, and persists the article. The stored record, including its
// assigned ID, is returned.
// Returns a ValidationError when a required field is missing or the title
// yields an empty slug, and ErrDuplicateSlug when the slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Category == "" {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}

	content := sanitize.HTML(in.Content)

	sl := slug.Make(in.Title)
	if sl == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "must contain at least one letter or digit"}
	}

	existing, err := s.Repo.GetBySlug(ctx, sl)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateSlug
	}

	metaTitle := in.MetaTitle
	if metaTitle == "" {
		metaTitle = in.Title
	}
	metaDescription := in.MetaDescription
	if metaDescription == "" {
		metaDescription = sanitize.Excerpt(content, s.excerptMax())
	}

	now := time.Now()
	art := &entity.Article{
		Title:           in.Title,
		Category:        in.Category,
		Content:         content,
		Slug:            sl,
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is empty.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// GetBySlug retrieves the article whose slug matches the argument.
// Returns ErrInvalidSlug if the slug is empty.
// Returns ErrArticleNotFound if no article matches.
func (s *Service) GetBySlug(ctx context.Context, sl string) (*entity.Article, error) {
	if sl == "" {
		return nil, ErrInvalidSlug
	}

	art, err := s.Repo.GetBySlug(ctx, sl)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List retrieves all articles ordered by creation time, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input will be updated; supplied content is
// re-sanitized through the same allow-list as creation, and UpdatedAt is
// always refreshed. The slug is left untouched.
// Returns ErrInvalidArticleID if the ID is empty.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID == "" {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}

	if in.Title != nil {
		if *in.Title == "" {
			return &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		art.Title = *in.Title
	}
	if in.Category != nil {
		if *in.Category == "" {
			return &entity.ValidationError{Field: "category", Message: "cannot be empty"}
		}
		art.Category = *in.Category
	}
	if in.Content != nil {
		if *in.Content == "" {
			return &entity.ValidationError{Field: "content", Message: "cannot be empty"}
		}
		art.Content = sanitize.HTML(*in.Content)
	}
	if in.MetaTitle != nil {
		art.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		art.MetaDescription = *in.MetaDescription
	}
	art.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, art); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by its ID. Deleting an ID that no longer exists
// is treated as success, making the operation idempotent.
// Returns ErrInvalidArticleID if the ID is empty.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
