package square

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a single entry from a Square error response.
type Error struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// APIError is a non-2xx response from Square. Errors carries the provider's
// error list when the body was parseable, else a single synthesized entry.
type APIError struct {
	StatusCode int
	Errors     []Error
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("square API returned status %d", e.StatusCode)
	}
	details := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		if apiErr.Detail != "" {
			details = append(details, apiErr.Detail)
			continue
		}
		details = append(details, apiErr.Code)
	}
	return fmt.Sprintf("square API returned status %d: %s", e.StatusCode, strings.Join(details, "; "))
}

func newAPIError(statusCode int, body []byte) *APIError {
	var decoded struct {
		Errors []Error `json:"errors"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && len(decoded.Errors) > 0 {
		return &APIError{StatusCode: statusCode, Errors: decoded.Errors}
	}

	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = "unknown error"
	}
	return &APIError{
		StatusCode: statusCode,
		Errors: []Error{{
			Category: "API_ERROR",
			Code:     "UNKNOWN_ERROR",
			Detail:   detail,
		}},
	}
}
