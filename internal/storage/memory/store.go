// Package memory is the embedded data layer backing the console. Catalog
// collections are seeded from JSON shipped in the binary, the rest from
// code fixtures, and every read can simulate network latency so the
// frontend's loading states stay honest in demos.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/customers"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/diagnostics"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/orders"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/products"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/treasury"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

// Options tunes the store. Latency is applied to every repository call;
// BootstrapAdmin, when set, replaces the seeded admin account (the caller
// supplies the bcrypt hash).
type Options struct {
	Latency        time.Duration
	Now            func() time.Time
	BootstrapAdmin *users.User
}

// Store holds all console collections behind one lock. Repositories hand
// out copies, never the backing slices.
type Store struct {
	mu      sync.RWMutex
	latency time.Duration
	now     func() time.Time

	orders    []orders.Order
	products  []products.Product
	customers []customers.Customer
	users     []users.User

	coinMetrics []treasury.CoinMetric
	snapshot    treasury.Snapshot
	pools       []treasury.LiquidityPool
	makers      []treasury.MarketMaker
	nodes       []treasury.NodeStatus
	alerts      []treasury.RiskAlert
	compliance  []treasury.ComplianceTask
	wallets     []treasury.WalletActivity
	releases    []treasury.ReleaseEvent
	proposals   []treasury.GovernanceProposal

	overview diagnostics.Overview
}

func NewStore(opts Options) (*Store, error) {
	s := &Store{
		latency: opts.Latency,
		now:     opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if err := s.seed(opts.BootstrapAdmin); err != nil {
		return nil, fmt.Errorf("memory store: %w", err)
	}
	return s, nil
}

// Orders returns the orders repository.
func (s *Store) Orders() orders.Repository {
	return &OrderRepository{store: s}
}

// Products returns the product catalog repository.
func (s *Store) Products() products.Repository {
	return &ProductRepository{store: s}
}

// Customers returns the customers repository.
func (s *Store) Customers() customers.Repository {
	return &CustomerRepository{store: s}
}

// Users returns the user directory repository.
func (s *Store) Users() users.Repository {
	return &UserRepository{store: s}
}

// Treasury returns the treasury dashboard repository.
func (s *Store) Treasury() treasury.Repository {
	return &TreasuryRepository{store: s}
}

// Diagnostics returns the system overview repository.
func (s *Store) Diagnostics() diagnostics.Repository {
	return &DiagnosticsRepository{store: s}
}

// pause simulates one network round trip. With zero latency it still
// honors an already-cancelled context.
func (s *Store) pause(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
