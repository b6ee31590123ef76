package memory

import (
	"context"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/diagnostics"
)

type DiagnosticsRepository struct {
	store *Store
}

func (r *DiagnosticsRepository) Overview(ctx context.Context) (diagnostics.Overview, error) {
	if err := r.store.pause(ctx); err != nil {
		return diagnostics.Overview{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	overview := r.store.overview
	overview.Services = copySlice(overview.Services)
	return overview, nil
}
