package memory

import (
	"context"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/orders"
)

type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) List(ctx context.Context, filters orders.Filters, params pagination.Params) (pagination.Page[orders.Order], error) {
	if err := r.store.pause(ctx); err != nil {
		return pagination.Page[orders.Order]{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]orders.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		if orders.Match(order, filters) {
			matched = append(matched, order)
		}
	}
	return pagination.Slice(matched, params), nil
}

func (r *OrderRepository) All(ctx context.Context) ([]orders.Order, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]orders.Order, len(r.store.orders))
	copy(out, r.store.orders)
	return out, nil
}
