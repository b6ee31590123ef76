package memory

import (
	"context"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/customers"
)

type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) List(ctx context.Context, filters customers.Filters, params pagination.Params) (pagination.Page[customers.Customer], error) {
	if err := r.store.pause(ctx); err != nil {
		return pagination.Page[customers.Customer]{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]customers.Customer, 0, len(r.store.customers))
	for _, customer := range r.store.customers {
		if customers.Match(customer, filters) {
			matched = append(matched, customer)
		}
	}
	return pagination.Slice(matched, params), nil
}

func (r *CustomerRepository) All(ctx context.Context) ([]customers.Customer, error) {
	if err := r.store.pause(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]customers.Customer, len(r.store.customers))
	copy(out, r.store.customers)
	return out, nil
}
