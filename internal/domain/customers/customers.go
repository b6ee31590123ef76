// Package customers implements the customer directory: listing with text,
// spend-range, and join-date-window filtering.
package customers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/datetime"
)

// Customer is one row of the directory. JoinDate is a bare YYYY-MM-DD
// string.
type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	TotalSpent float64 `json:"totalSpent"`
	JoinDate   string  `json:"joinDate"`
}

// Filters narrows a customer listing. MinSpent/MaxSpent are inclusive and
// nil when absent; the date bounds are inclusive bare-date strings.
type Filters struct {
	Query        string
	MinSpent     *float64
	MaxSpent     *float64
	FromJoinDate string
	ToJoinDate   string
}

type FilterError struct {
	Field   string
	Message string
}

func (e FilterError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ParseFilters validates listing query parameters.
func ParseFilters(values url.Values) (Filters, pagination.Params, error) {
	filters := Filters{Query: strings.TrimSpace(values.Get("q"))}
	params := pagination.Parse(values)

	minSpent, err := parseAmount("minSpent", values.Get("minSpent"))
	if err != nil {
		return filters, params, err
	}
	maxSpent, err := parseAmount("maxSpent", values.Get("maxSpent"))
	if err != nil {
		return filters, params, err
	}
	if minSpent != nil && maxSpent != nil && *maxSpent < *minSpent {
		return filters, params, FilterError{Field: "maxSpent", Message: "must be at least minSpent"}
	}
	filters.MinSpent = minSpent
	filters.MaxSpent = maxSpent

	fromJoin, err := parseDateParam("fromJoinDate", values.Get("fromJoinDate"))
	if err != nil {
		return filters, params, err
	}
	toJoin, err := parseDateParam("toJoinDate", values.Get("toJoinDate"))
	if err != nil {
		return filters, params, err
	}
	if fromJoin != "" && toJoin != "" && toJoin < fromJoin {
		return filters, params, FilterError{Field: "toJoinDate", Message: "must be on or after fromJoinDate"}
	}
	filters.FromJoinDate = fromJoin
	filters.ToJoinDate = toJoin

	return filters, params, nil
}

func parseAmount(field, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount < 0 {
		return nil, FilterError{Field: field, Message: "must be a non-negative number"}
	}
	return &amount, nil
}

func parseDateParam(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if !datetime.ValidDateOnly(value) {
		return "", FilterError{Field: field, Message: "must be YYYY-MM-DD"}
	}
	return value, nil
}

// Match reports whether a customer passes the filters. The query matches
// name or email, case-insensitively.
func Match(customer Customer, filters Filters) bool {
	if filters.Query != "" {
		q := strings.ToLower(filters.Query)
		if !strings.Contains(strings.ToLower(customer.Name), q) &&
			!strings.Contains(strings.ToLower(customer.Email), q) {
			return false
		}
	}
	if filters.MinSpent != nil && customer.TotalSpent < *filters.MinSpent {
		return false
	}
	if filters.MaxSpent != nil && customer.TotalSpent > *filters.MaxSpent {
		return false
	}
	if filters.FromJoinDate != "" && customer.JoinDate < filters.FromJoinDate {
		return false
	}
	if filters.ToJoinDate != "" && customer.JoinDate > filters.ToJoinDate {
		return false
	}
	return true
}

// Repository serves the customer directory.
type Repository interface {
	List(ctx context.Context, filters Filters, params pagination.Params) (pagination.Page[Customer], error)
	All(ctx context.Context) ([]Customer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters Filters, params pagination.Params) (pagination.Page[Customer], error) {
	return s.repo.List(ctx, filters, params)
}
