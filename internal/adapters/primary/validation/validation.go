// Package validation provides query parameter parsing helpers for HTTP handlers.
package validation

import (
	"net/http"
	"strconv"
)

// ParseIntQueryParam safely parses an integer query parameter.
// Missing, malformed, and negative values all fall back to the default
// so that report endpoints never reject a request over a bad window.
func ParseIntQueryParam(r *http.Request, key string, defaultValue int) int {
	valueStr := r.URL.Query().Get(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 0 {
		return defaultValue
	}

	return value
}

// ParseStringQueryParam safely parses a string query parameter
func ParseStringQueryParam(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}
