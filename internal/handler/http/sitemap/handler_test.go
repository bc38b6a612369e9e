package sitemap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketing-cms/internal/domain/entity"
	sitemapUC "marketing-cms/internal/usecase/sitemap"
)

type stubRepo struct {
	articles []*entity.Article
	err      error
}

func (s *stubRepo) Create(context.Context, *entity.Article) error             { return nil }
func (s *stubRepo) Get(context.Context, string) (*entity.Article, error)      { return nil, nil }
func (s *stubRepo) GetBySlug(context.Context, string) (*entity.Article, error) {
	return nil, nil
}
func (s *stubRepo) List(context.Context) ([]*entity.Article, error) {
	return s.articles, s.err
}
func (s *stubRepo) ListByCategory(context.Context, string) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubRepo) ListRecent(context.Context, int) ([]*entity.Article, error) {
	return nil, nil
}
func (s *stubRepo) Update(context.Context, *entity.Article) error { return nil }
func (s *stubRepo) Delete(context.Context, string) error          { return nil }

func TestHandler(t *testing.T) {
	stub := &stubRepo{articles: []*entity.Article{
		{Slug: "summer-menu", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}}
	handler := Handler{Svc: &sitemapUC.Service{Repo: stub, BaseURL: "https://example.com"}}

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "https://example.com/blog/summer-menu") {
		t.Errorf("blog entry missing:\n%s", rec.Body.String())
	}
}

func TestHandler_storeError(t *testing.T) {
	handler := Handler{Svc: &sitemapUC.Service{
		Repo:    &stubRepo{err: errors.New("store down")},
		BaseURL: "https://example.com",
	}}

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Code = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); strings.HasPrefix(ct, "application/xml") {
		t.Errorf("error should not be XML, Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "failed to generate sitemap") {
		t.Errorf("unexpected error body: %s", rec.Body.String())
	}
}
