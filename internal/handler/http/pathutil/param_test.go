package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParam(t *testing.T) {
	mux := http.NewServeMux()
	var got string
	var gotErr error
	mux.HandleFunc("GET /blogs/{id}", func(w http.ResponseWriter, r *http.Request) {
		got, gotErr = Param(r, "id")
	})

	req := httptest.NewRequest(http.MethodGet, "/blogs/abc123", nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)

	if gotErr != nil {
		t.Fatalf("Param err=%v", gotErr)
	}
	if got != "abc123" {
		t.Errorf("Param = %q, want %q", got, "abc123")
	}
}

func TestParam_missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)

	if _, err := Param(req, "id"); !errors.Is(err, ErrMissingParam) {
		t.Errorf("want ErrMissingParam, got %v", err)
	}
}
