// Package products implements the product catalog: listing, category
// lookup, and create/update with validated input.
package products

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/sanitize"
)

var ErrNotFound = errors.New("product not found")

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// Input is the payload for creating or updating a product.
type Input struct {
	Name     string  `json:"name" validate:"required,max=120"`
	Price    float64 `json:"price" validate:"gte=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"required,max=60"`
}

type Filters struct {
	Query    string
	Category string
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

// ParseFilters reads listing query parameters. Category matching is exact,
// query matching is a case-insensitive name substring.
func ParseFilters(values url.Values) (Filters, pagination.Params, error) {
	filters := Filters{
		Query:    strings.TrimSpace(values.Get("q")),
		Category: strings.TrimSpace(values.Get("category")),
	}
	return filters, pagination.Parse(values), nil
}

// Match reports whether a product passes the filters.
func Match(product Product, filters Filters) bool {
	if filters.Query != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filters.Query)) {
		return false
	}
	if filters.Category != "" && product.Category != filters.Category {
		return false
	}
	return true
}

// Categories returns the distinct categories of a product set, sorted.
func Categories(items []Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, product := range items {
		if _, ok := seen[product.Category]; ok {
			continue
		}
		seen[product.Category] = struct{}{}
		out = append(out, product.Category)
	}
	sort.Strings(out)
	return out
}

// Repository serves and mutates the product catalog.
type Repository interface {
	List(ctx context.Context, filters Filters, params pagination.Params) (pagination.Page[Product], error)
	All(ctx context.Context) ([]Product, error)
	Insert(ctx context.Context, product Product) error
	Replace(ctx context.Context, product Product) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *Service) List(ctx context.Context, filters Filters, params pagination.Params) (pagination.Page[Product], error) {
	return s.repo.List(ctx, filters, params)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(all), nil
}

// Create validates the input and inserts a new product with a generated id.
func (s *Service) Create(ctx context.Context, input Input) (Product, error) {
	input.Name = sanitize.Text(input.Name)
	input.Category = sanitize.Text(input.Category)
	if err := s.validate.Struct(input); err != nil {
		return Product{}, fmt.Errorf("validate product: %w", err)
	}

	product := Product{
		ID:       "PROD-" + uuid.NewString(),
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		Category: input.Category,
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Update validates the input and replaces an existing product.
func (s *Service) Update(ctx context.Context, id string, input Input) (Product, error) {
	input.Name = sanitize.Text(input.Name)
	input.Category = sanitize.Text(input.Category)
	if err := s.validate.Struct(input); err != nil {
		return Product{}, fmt.Errorf("validate product: %w", err)
	}

	product := Product{
		ID:       id,
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		Category: input.Category,
	}
	if err := s.repo.Replace(ctx, product); err != nil {
		return Product{}, err
	}
	return product, nil
}
