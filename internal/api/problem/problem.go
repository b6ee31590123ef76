// Package problem writes RFC 7807 application/problem+json error responses.
package problem

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

const contentType = "application/problem+json"

// Common problem type URIs.
const (
	TypeValidation   = "https://admin-console.pro/problems/validation-error"
	TypeUnauthorized = "https://admin-console.pro/problems/unauthorized"
	TypeForbidden    = "https://admin-console.pro/problems/forbidden"
	TypeNotFound     = "https://admin-console.pro/problems/not-found"
	TypeConflict     = "https://admin-console.pro/problems/conflict"
	TypeRateLimited  = "https://admin-console.pro/problems/rate-limited"
	TypeServerError  = "https://admin-console.pro/problems/server-error"
)

type Details struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   map[string]any `json:"errors,omitempty"`
}

type Option func(*Details)

func WithDetail(detail string) Option {
	return func(p *Details) {
		p.Detail = detail
	}
}

func WithErrors(errs map[string]any) Option {
	return func(p *Details) {
		p.Errors = errs
	}
}

// Write renders a problem response. Outside development the underlying error
// text is replaced by the generic status text so internals do not leak; 5xx
// problems are logged at error level, 4xx at warn, using the request-scoped
// logger.
func Write(w http.ResponseWriter, r *http.Request, status int, typ, title string, err error, env string, opts ...Option) {
	details := Details{
		Type:   typ,
		Title:  title,
		Status: status,
	}

	for _, opt := range opts {
		opt(&details)
	}

	if details.Detail == "" && err != nil {
		if env == "development" || env == "test" {
			details.Detail = err.Error()
		} else {
			details.Detail = http.StatusText(status)
		}
	}

	if details.Instance == "" && r != nil {
		details.Instance = r.URL.Path
	}

	if err != nil && r != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("type", typ).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(title)
	}

	WriteDetails(w, details)
}

// WriteDetails renders an already-built problem document.
func WriteDetails(w http.ResponseWriter, details Details) {
	payload, err := json.Marshal(details)
	if err != nil {
		fallback := fmt.Sprintf("{\"type\":\"about:blank\",\"title\":\"%s\",\"status\":500}", http.StatusText(http.StatusInternalServerError))
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(fallback))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(details.Status)
	_, _ = w.Write(payload)
}
