package http

import (
	"net/http"
	"strconv"
	"strings"
)

// optionalIntQuery reads an integer query parameter. A missing or blank
// parameter yields nil.
func optionalIntQuery(r *http.Request, key string) (*int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &value, true
}

func optionalStringQuery(r *http.Request, key string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}
