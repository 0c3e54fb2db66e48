// Package controllers parses HTTP requests, delegates to services, and
// shapes responses. No domain rule lives here.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pathID parses the {id} route parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// pagination reads skip/limit query parameters with defaults.
func pagination(r *http.Request) (skip, limit int) {
	skip, limit = defaultSkip, defaultLimit
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}
