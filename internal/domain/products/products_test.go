package products

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
)

type stubRepo struct {
	items    []Product
	inserted []Product
	replaced []Product
	missing  bool
}

func (r *stubRepo) List(_ context.Context, filters Filters, params pagination.Params) (pagination.Page[Product], error) {
	var filtered []Product
	for _, item := range r.items {
		if Match(item, filters) {
			filtered = append(filtered, item)
		}
	}
	return pagination.Slice(filtered, params), nil
}

func (r *stubRepo) All(_ context.Context) ([]Product, error) {
	return r.items, nil
}

func (r *stubRepo) Insert(_ context.Context, product Product) error {
	r.inserted = append(r.inserted, product)
	return nil
}

func (r *stubRepo) Replace(_ context.Context, product Product) error {
	if r.missing {
		return ErrNotFound
	}
	r.replaced = append(r.replaced, product)
	return nil
}

func TestMatch(t *testing.T) {
	product := Product{Name: "Wireless Mouse", Category: "Electronics"}

	require.True(t, Match(product, Filters{}))
	require.True(t, Match(product, Filters{Query: "wireless"}))
	require.True(t, Match(product, Filters{Category: "Electronics"}))
	require.False(t, Match(product, Filters{Query: "keyboard"}))
	require.False(t, Match(product, Filters{Category: "electronics"}))
}

func TestCategoriesDistinctSorted(t *testing.T) {
	items := []Product{
		{Category: "Office"},
		{Category: "Electronics"},
		{Category: "Office"},
		{Category: "Accessories"},
	}

	require.Equal(t, []string{"Accessories", "Electronics", "Office"}, Categories(items))
}

func TestParseFilters(t *testing.T) {
	filters, params, err := ParseFilters(url.Values{"q": {" mouse "}, "category": {"Electronics"}, "limit": {"2"}})

	require.NoError(t, err)
	require.Equal(t, "mouse", filters.Query)
	require.Equal(t, "Electronics", filters.Category)
	require.Equal(t, 2, params.Limit)
}

func TestCreateGeneratesIDAndSanitizes(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Input{
		Name:     "<b>Desk Lamp</b>",
		Price:    39.99,
		Stock:    12,
		Category: "Office",
	})

	require.NoError(t, err)
	require.Contains(t, created.ID, "PROD-")
	require.Equal(t, "Desk Lamp", created.Name)
	require.Len(t, repo.inserted, 1)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := NewService(&stubRepo{})

	_, err := svc.Create(context.Background(), Input{Name: "", Price: 10, Category: "Office"})
	require.Error(t, err)

	_, err = svc.Create(context.Background(), Input{Name: "Lamp", Price: -1, Category: "Office"})
	require.Error(t, err)
}

func TestUpdateReplacesExisting(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	updated, err := svc.Update(context.Background(), "PROD-1", Input{
		Name:     "Desk Lamp v2",
		Price:    44.99,
		Stock:    8,
		Category: "Office",
	})

	require.NoError(t, err)
	require.Equal(t, "PROD-1", updated.ID)
	require.Len(t, repo.replaced, 1)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := NewService(&stubRepo{missing: true})

	_, err := svc.Update(context.Background(), "PROD-404", Input{Name: "x", Price: 1, Category: "c"})
	require.ErrorIs(t, err, ErrNotFound)
}
