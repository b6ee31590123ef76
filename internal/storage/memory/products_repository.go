package memory

import (
	"context"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/products"
)

type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) List(ctx context.Context, filters products.Filters, params pagination.Params) (pagination.Page[products.Product], error) {
	if err := r.store.pause(ctx); err != nil {
		return pagination.Page[products.Product]{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]products.Product, 0, len(r.store.products))
	for _, product := range r.store.products {
		if products.Match(product, filters) {
			matched = append(matched, product)
		}
	}
	return pagination.Slice(matched, params), nil
}

func (r *ProductRepository) All(ctx context.Context) ([]products.Product, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]products.Product, len(r.store.products))
	copy(out, r.store.products)
	return out, nil
}

// Insert prepends so new products surface on the first page, matching how
// the console lists the catalog.
func (r *ProductRepository) Insert(ctx context.Context, product products.Product) error {
	if err := r.store.pause(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products = append([]products.Product{product}, r.store.products...)
	return nil
}

func (r *ProductRepository) Replace(ctx context.Context, product products.Product) error {
	if err := r.store.pause(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.products {
		if existing.ID == product.ID {
			r.store.products[i] = product
			return nil
		}
	}
	return products.ErrNotFound
}
