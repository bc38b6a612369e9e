// Package pathutil provides helpers for URL path parameters and
// metrics-friendly path normalization.
package pathutil

import (
	"errors"
	"net/http"
)

// ErrMissingParam is returned when a path parameter is absent or empty.
var ErrMissingParam = errors.New("invalid path parameter")

// Param extracts a named path parameter registered on the ServeMux pattern.
// Returns ErrMissingParam when the value is empty.
func Param(r *http.Request, name string) (string, error) {
	v := r.PathValue(name)
	if v == "" {
		return "", ErrMissingParam
	}
	return v, nil
}
