package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"marketing-cms/internal/domain/entity"
	blogUC "marketing-cms/internal/usecase/blog"
)

// In-memory ArticleRepository shared by the handler tests.
type stubRepo struct {
	data   map[string]*entity.Article
	nextID int
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = "id-" + strconv.Itoa(s.nextID)
	s.nextID++
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) GetBySlug(_ context.Context, sl string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.data {
		if a.Slug == sl {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		out = append(out, a)
	}
	return out, nil
}

func (s *stubRepo) ListByCategory(_ context.Context, category string) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, a := range s.data {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubRepo) ListRecent(_ context.Context, limit int) ([]*entity.Article, error) {
	all, err := s.List(context.Background())
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

// newMux registers the handlers without the auth middleware so tests can hit
// write endpoints directly. Auth is covered in the auth package tests.
func newMux(svc *blogUC.Service) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET    /blogs", ListHandler{svc})
	mux.Handle("GET    /blogs/{id}", GetHandler{svc})
	mux.Handle("GET    /blogs/{first}/{second}", subresourceHandler{
		bySlug:  GetBySlugHandler{svc},
		related: RelatedHandler{svc},
	})
	mux.Handle("POST   /blogs", CreateHandler{svc})
	mux.Handle("PUT    /blogs/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /blogs/{id}", DeleteHandler{svc})
	return mux
}

func seedArticle(s *stubRepo, id, title, category, slug string) *entity.Article {
	a := &entity.Article{
		ID:        id,
		Title:     title,
		Category:  category,
		Content:   "<p>" + title + "</p>",
		Slug:      slug,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.data[id] = a
	return a
}

func TestCreateHandler(t *testing.T) {
	stub := newStub()
	mux := newMux(&blogUC.Service{Repo: stub})

	body := `{"title":"Summer Menu","category":"menu","content":"<p>New dishes</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Code = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var got DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Slug != "summer-menu" {
		t.Errorf("Slug = %q, want %q", got.Slug, "summer-menu")
	}
	if got.MetaTitle != "Summer Menu" {
		t.Errorf("MetaTitle = %q, want title default", got.MetaTitle)
	}
	if got.ID == "" {
		t.Errorf("ID missing in response")
	}
}

func TestCreateHandler_validation(t *testing.T) {
	mux := newMux(&blogUC.Service{Repo: newStub()})

	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"title":"no content"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Code = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "required") {
		t.Errorf("expected validation message, got %s", rec.Body.String())
	}
}

func TestCreateHandler_duplicateSlug(t *testing.T) {
	stub := newStub()
	seedArticle(stub, "id-9", "Summer Menu", "menu", "summer-menu")
	mux := newMux(&blogUC.Service{Repo: stub})

	body := `{"title":"Summer Menu","category":"menu","content":"<p>x</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("Code = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestGetHandler(t *testing.T) {
	stub := newStub()
	seedArticle(stub, "id-1", "Hello", "news", "hello")
	mux := newMux(&blogUC.Service{Repo: stub})

	req := httptest.NewRequest(http.MethodGet, "/blogs/id-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200", rec.Code)
	}
	var got DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "id-1" || got.Title != "Hello" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestGetHandler_notFound(t *testing.T) {
	mux := newMux(&blogUC.Service{Repo: newStub()})

	req := httptest.NewRequest(http.MethodGet, "/blogs/ghost", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Code = %d, want 404", rec.Code)
	}
}

func TestGetBySlugHandler(t *testing.T) {
	stub := newStub()
	seedArticle(stub, "id-1", "Hello", "news", "hello")
	mux := newMux(&blogUC.Service{Repo: stub})

	req := httptest.NewRequest(http.MethodGet, "/blogs/slug/hello", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Slug != "hello" {
		t.Errorf("Slug = %q, want %q", got.Slug, "hello")
	}
}

func TestListHandler_storeError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("replica set unreachable")
	mux := newMux(&blogUC.Service{Repo: stub})

	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Code = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("internal detail leaked: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "replica") {
		t.Errorf("store error leaked: %s", rec.Body.String())
	}
}

func TestRelatedHandler(t *testing.T) {
	stub := newStub()
	seedArticle(stub, "id-1", "Source", "wine", "source")
	seedArticle(stub, "id-2", "Pairings", "wine", "pairings")
	mux := newMux(&blogUC.Service{Repo: stub})

	req := httptest.NewRequest(http.MethodGet, "/blogs/source/related", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got []DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "pairings" {
		t.Errorf("unexpected related set: %+v", got)
	}
}

func TestSubresourceHandler_unknown(t *testing.T) {
	mux := newMux(&blogUC.Service{Repo: newStub()})

	req := httptest.NewRequest(http.MethodGet, "/blogs/hello/comments", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Code = %d, want 404", rec.Code)
	}
}

func TestUpdateHandler(t *testing.T) {
	stub := newStub()
	seedArticle(stub, "id-1", "Hello", "news", "hello")
	mux := newMux(&blogUC.Service{Repo: stub})

	body := `{"title":"Hello Again"}`
	req := httptest.NewRequest(http.MethodPut, "/blogs/id-1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "blog updated successfully") {
		t.Errorf("missing ack message: %s", rec.Body.String())
	}
	if stub.data["id-1"].Title != "Hello Again" {
		t.Errorf("title not updated: %+v", stub.data["id-1"])
	}
	if stub.data["id-1"].Slug != "hello" {
		t.Errorf("slug must not change on update: %+v", stub.data["id-1"])
	}
}

func TestUpdateHandler_notFound(t *testing.T) {
	mux := newMux(&blogUC.Service{Repo: newStub()})

	req := httptest.NewRequest(http.MethodPut, "/blogs/ghost", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Code = %d, want 404", rec.Code)
	}
}

func TestDeleteHandler(t *testing.T) {
	stub := newStub()
	seedArticle(stub, "id-1", "Hello", "news", "hello")
	mux := newMux(&blogUC.Service{Repo: stub})

	req := httptest.NewRequest(http.MethodDelete, "/blogs/id-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "blog deleted successfully") {
		t.Errorf("missing ack message: %s", rec.Body.String())
	}
	if _, ok := stub.data["id-1"]; ok {
		t.Errorf("article still present after delete")
	}
}
