// Package orders implements the orders collection: listing with text,
// status, and date-window filtering.
package orders

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/datetime"
)

var ErrNotFound = errors.New("order not found")

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s names a known order status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is one row of the orders collection. Date is a bare YYYY-MM-DD
// string so date-window filters order correctly as strings.
type Order struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Total         float64 `json:"total"`
	Status        Status  `json:"status"`
	Date          string  `json:"date"`
}

// Filters narrows an order listing. FromDate/ToDate are inclusive bare-date
// bounds.
type Filters struct {
	Query    string
	Status   string
	FromDate string
	ToDate   string
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

// ParseFilters validates listing query parameters. Date bounds must be bare
// YYYY-MM-DD values, the same form the range picker emits for
// fromDate/toDate.
func ParseFilters(values url.Values) (Filters, pagination.Params, error) {
	filters := Filters{}
	params := pagination.Parse(values)

	filters.Query = strings.TrimSpace(values.Get("q"))

	filters.Status = strings.TrimSpace(values.Get("status"))
	if filters.Status != "" && !ValidStatus(filters.Status) {
		return filters, params, FilterError{Field: "status", Message: "unknown status"}
	}

	fromDate, err := parseDateParam("fromDate", values.Get("fromDate"))
	if err != nil {
		return filters, params, err
	}
	toDate, err := parseDateParam("toDate", values.Get("toDate"))
	if err != nil {
		return filters, params, err
	}
	if fromDate != "" && toDate != "" && toDate < fromDate {
		return filters, params, FilterError{Field: "toDate", Message: "must be on or after fromDate"}
	}
	filters.FromDate = fromDate
	filters.ToDate = toDate

	return filters, params, nil
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

// Match reports whether an order passes the filters. The query matches id,
// customer name, or customer email, case-insensitively.
func Match(order Order, filters Filters) bool {
	if filters.Query != "" {
		q := strings.ToLower(filters.Query)
		if !strings.Contains(strings.ToLower(order.ID), q) &&
			!strings.Contains(strings.ToLower(order.CustomerName), q) &&
			!strings.Contains(strings.ToLower(order.CustomerEmail), q) {
			return false
		}
	}
	if filters.Status != "" && string(order.Status) != filters.Status {
		return false
	}
	if filters.FromDate != "" && order.Date < filters.FromDate {
		return false
	}
	if filters.ToDate != "" && order.Date > filters.ToDate {
		return false
	}
	return true
}

// Repository serves the orders collection.
type Repository interface {
	List(ctx context.Context, filters Filters, params pagination.Params) (pagination.Page[Order], error)
	All(ctx context.Context) ([]Order, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filters Filters, params pagination.Params) (pagination.Page[Order], error) {
	return s.repo.List(ctx, filters, params)
}
