package blog

import (
	"context"
	"fmt"

	"marketing-cms/internal/domain/entity"
)

// Related produces up to three articles related to the one identified by the
// given slug. Articles sharing the source's category come first; when fewer
// than three exist, the most recently created articles fill the remainder.
// The source article itself is never included and duplicates are collapsed
// by slug, keeping the first occurrence.
// Returns ErrArticleNotFound when no article matches the slug. A result
// shorter than three entries is normal when the store holds few articles.
func (s *Service) Related(ctx context.Context, sl string) ([]*entity.Article, error) {
	if sl == "" {
		return nil, ErrInvalidSlug
	}

	current, err := s.Repo.GetBySlug(ctx, sl)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if current == nil {
		return nil, ErrArticleNotFound
	}

	sameCategory, err := s.Repo.ListByCategory(ctx, current.Category)
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	matches := excludeSlug(sameCategory, sl)

	if len(matches) < relatedLimit {
		latest, err := s.Repo.ListRecent(ctx, recentWindow)
		if err != nil {
			return nil, fmt.Errorf("list recent articles: %w", err)
		}
		matches = unionBySlug(matches, excludeSlug(latest, sl))
	}

	if len(matches) > relatedLimit {
		matches = matches[:relatedLimit]
	}
	return matches, nil
}

// excludeSlug filters out the article with the given slug, preserving order.
func excludeSlug(articles []*entity.Article, sl string) []*entity.Article {
	out := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		if a.Slug != sl {
			out = append(out, a)
		}
	}
	return out
}

// unionBySlug concatenates the given sequences and removes later duplicates
// by slug, keeping each slug's first occurrence. Because category matches are
// passed first, they take precedence over recency-fallback entries carrying
// the same slug.
func unionBySlug(lists ...[]*entity.Article) []*entity.Article {
	seen := make(map[string]struct{})
	var out []*entity.Article
	for _, list := range lists {
		for _, a := range list {
			if _, ok := seen[a.Slug]; ok {
				continue
			}
			seen[a.Slug] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}
