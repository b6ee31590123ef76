// Package pagination implements the page/limit envelope shared by every
// collection endpoint.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a 1-based page plus page size, parsed from query parameters.
type Params struct {
	Page  int
	Limit int
}

// Parse reads page/limit from query values. Missing, malformed, or
// out-of-range values fall back to page 1 and the default limit; the limit
// is capped at MaxLimit.
func Parse(values url.Values) Params {
	params := Params{Page: 1, Limit: DefaultLimit}

	if raw := values.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}
	if raw := values.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	return params
}

// Page is the response envelope for a paginated collection.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Slice pages an already-filtered collection. Total always reflects the full
// filtered length; a page past the end yields an empty data slice.
func Slice[T any](items []T, params Params) Page[T] {
	total := len(items)
	start := (params.Page - 1) * params.Limit
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{Data: data, Total: total, Page: params.Page, Limit: params.Limit}
}
