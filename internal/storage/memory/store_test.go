package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/pagination"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/customers"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/orders"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/products"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(Options{
		Now: func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return store
}

func TestSeedLoadsEmbeddedCollections(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	allOrders, err := store.Orders().All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, allOrders)
	for _, o := range allOrders {
		require.True(t, orders.ValidStatus(string(o.Status)), "order %s has status %q", o.ID, o.Status)
		require.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, o.Date)
	}

	allProducts, err := store.Products().All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, allProducts)

	allCustomers, err := store.Customers().All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, allCustomers)
}

func TestOrderListFiltersAndPaginates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	page, err := store.Orders().List(ctx, orders.Filters{Status: string(orders.StatusDelivered)}, pagination.Params{Page: 1, Limit: 5})
	require.NoError(t, err)
	require.LessOrEqual(t, len(page.Data), 5)
	for _, o := range page.Data {
		require.Equal(t, orders.StatusDelivered, o.Status)
	}

	all, err := store.Orders().All(ctx)
	require.NoError(t, err)
	delivered := 0
	for _, o := range all {
		if o.Status == orders.StatusDelivered {
			delivered++
		}
	}
	require.Equal(t, delivered, page.Total)
}

func TestProductInsertPrepends(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	product := products.Product{ID: "PROD-999", Name: "Test Widget", Price: 9.99, Stock: 3, Category: "Office"}
	require.NoError(t, store.Products().Insert(ctx, product))

	page, err := store.Products().List(ctx, products.Filters{}, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, "PROD-999", page.Data[0].ID)
}

func TestProductReplaceUnknownID(t *testing.T) {
	store := newTestStore(t)

	err := store.Products().Replace(context.Background(), products.Product{ID: "PROD-none"})
	require.ErrorIs(t, err, products.ErrNotFound)
}

func TestCustomerSpendFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	minSpent := 1000.0
	page, err := store.Customers().List(ctx, customers.Filters{MinSpent: &minSpent}, pagination.Params{Page: 1, Limit: 100})
	require.NoError(t, err)
	require.NotEmpty(t, page.Data)
	for _, c := range page.Data {
		require.GreaterOrEqual(t, c.TotalSpent, minSpent)
	}
}

func TestUserRepositorySeedAndLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	admin, err := store.Users().FindByEmail(ctx, "ADMIN@gmail.com")
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdmin, admin.Role)

	_, err = store.Users().FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, users.ErrUserNotFound)

	err = store.Users().Insert(ctx, users.User{ID: "x", Email: "staff@gmail.com"})
	require.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestBootstrapAdminReplacesSeed(t *testing.T) {
	store, err := NewStore(Options{
		BootstrapAdmin: &users.User{
			ID:           "boot-1",
			Name:         "Operator",
			Email:        "admin@gmail.com",
			Role:         auth.RoleAdmin,
			Status:       users.StatusActive,
			PasswordHash: "$2a$12$fakehash",
		},
	})
	require.NoError(t, err)

	admin, err := store.Users().FindByEmail(context.Background(), "admin@gmail.com")
	require.NoError(t, err)
	require.Equal(t, "boot-1", admin.ID)
	require.NotEmpty(t, admin.PasswordHash)

	all, err := store.Users().All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestTreasuryFixtures(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	metrics, err := store.Treasury().CoinMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 6)

	snap, err := store.Treasury().Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Assets, 6)
	require.Len(t, snap.Liabilities, 2)

	// Mutating the returned snapshot must not touch the seed.
	snap.Assets[0].Asset = "DOGE"
	again, err := store.Treasury().Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "USDC", again.Assets[0].Asset)
}

func TestDiagnosticsOverview(t *testing.T) {
	store := newTestStore(t)

	overview, err := store.Diagnostics().Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, "v2.5.1", overview.Version)
	require.Len(t, overview.Services, 5)
}

func TestPauseHonorsCancelledContext(t *testing.T) {
	store, err := NewStore(Options{Latency: 5 * time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err = store.Orders().All(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}
