// Package api assembles the HTTP surface of the console backend: routing,
// middleware order, and the handler wiring.
package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/handlers"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/api/middleware"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/audit"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/auth"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/config"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/customers"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/dashboard"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/diagnostics"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/orders"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/products"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/treasury"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/domain/users"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/metrics"
)

// Deps carries the services the router exposes. The caller owns their
// construction so tests can swap any of them.
type Deps struct {
	Users       *users.Service
	Orders      *orders.Service
	Products    *products.Service
	Customers   *customers.Service
	Dashboard   *dashboard.Service
	Treasury    *treasury.Service
	Diagnostics *diagnostics.Service
	Trail       *audit.Trail
	JWT         *auth.JWTManager
}

func NewRouter(cfg config.Config, logger zerolog.Logger, deps Deps) http.Handler {
	env := cfg.Environment

	authHandler := handlers.NewAuthHandler(deps.Users, deps.JWT, deps.Trail, env)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard, env)
	ordersHandler := handlers.NewOrdersHandler(deps.Orders, env)
	productsHandler := handlers.NewProductsHandler(deps.Products, env)
	customersHandler := handlers.NewCustomersHandler(deps.Customers, env)
	adminUsersHandler := handlers.NewAdminUsersHandler(deps.Users, env)
	systemHandler := handlers.NewAdminSystemHandler(deps.Diagnostics, deps.Trail, env)
	treasuryHandler := handlers.NewTreasuryHandler(deps.Treasury, env)

	// One limiter store shared by every route; the tier context must be set
	// before the limiter runs.
	limit := middleware.RateLimit(cfg.RateLimit)
	verify := middleware.Authenticate(deps.JWT, env)

	authed := func(h http.Handler) http.Handler {
		return limit(verify(h))
	}
	adminOnly := func(h http.Handler) http.Handler {
		return middleware.WithRateLimitTierHandler(middleware.TierAdmin)(limit(verify(middleware.RequireRole(env, auth.RoleAdmin)(h))))
	}
	staffOrAdmin := func(h http.Handler) http.Handler {
		return limit(verify(middleware.RequireRole(env, auth.RoleAdmin, auth.RoleStaff)(h)))
	}
	loginTier := func(h http.Handler) http.Handler {
		return middleware.WithRateLimitTierHandler(middleware.TierLogin)(limit(h))
	}

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz())
	mux.Handle("/metrics", metrics.Handler())

	mux.Handle("/api/v1/auth/login", methodMux(map[string]http.Handler{
		http.MethodPost: loginTier(http.HandlerFunc(authHandler.Login)),
	}))
	mux.Handle("/api/v1/auth/me", methodMux(map[string]http.Handler{
		http.MethodGet: authed(http.HandlerFunc(authHandler.Me)),
	}))

	mux.Handle("/api/v1/dashboard/kpis", methodMux(map[string]http.Handler{
		http.MethodGet: authed(http.HandlerFunc(dashboardHandler.KPIs)),
	}))

	mux.Handle("/api/v1/orders", methodMux(map[string]http.Handler{
		http.MethodGet: authed(http.HandlerFunc(ordersHandler.List)),
	}))

	mux.Handle("/api/v1/products", methodMux(map[string]http.Handler{
		http.MethodGet:  authed(http.HandlerFunc(productsHandler.List)),
		http.MethodPost: staffOrAdmin(http.HandlerFunc(productsHandler.Create)),
	}))
	mux.Handle("/api/v1/products/categories", methodMux(map[string]http.Handler{
		http.MethodGet: authed(http.HandlerFunc(productsHandler.Categories)),
	}))
	mux.Handle("/api/v1/products/{id}", methodMux(map[string]http.Handler{
		http.MethodPut: staffOrAdmin(http.HandlerFunc(productsHandler.Update)),
	}))

	mux.Handle("/api/v1/customers", methodMux(map[string]http.Handler{
		http.MethodGet: authed(http.HandlerFunc(customersHandler.List)),
	}))

	mux.Handle("/api/v1/admin/users", methodMux(map[string]http.Handler{
		http.MethodGet:  adminOnly(http.HandlerFunc(adminUsersHandler.List)),
		http.MethodPost: adminOnly(http.HandlerFunc(adminUsersHandler.Invite)),
	}))
	mux.Handle("/api/v1/admin/users/{id}/role", methodMux(map[string]http.Handler{
		http.MethodPatch: adminOnly(http.HandlerFunc(adminUsersHandler.UpdateRole)),
	}))

	mux.Handle("/api/v1/admin/system/overview", methodMux(map[string]http.Handler{
		http.MethodGet: adminOnly(http.HandlerFunc(systemHandler.Overview)),
	}))
	mux.Handle("/api/v1/admin/system/health-check", methodMux(map[string]http.Handler{
		http.MethodPost: adminOnly(http.HandlerFunc(systemHandler.RunHealthCheck)),
	}))
	mux.Handle("/api/v1/admin/system/audit-logs", methodMux(map[string]http.Handler{
		http.MethodGet: adminOnly(http.HandlerFunc(systemHandler.AuditLogs)),
	}))

	treasuryRoutes := map[string]http.HandlerFunc{
		"coin-metrics":         treasuryHandler.CoinMetrics,
		"snapshot":             treasuryHandler.Snapshot,
		"liquidity-pools":      treasuryHandler.LiquidityPools,
		"market-makers":        treasuryHandler.MarketMakers,
		"nodes":                treasuryHandler.NodeStatuses,
		"risk-alerts":          treasuryHandler.RiskAlerts,
		"compliance-tasks":     treasuryHandler.ComplianceTasks,
		"wallet-activity":      treasuryHandler.WalletActivity,
		"release-schedule":     treasuryHandler.ReleaseSchedule,
		"governance-proposals": treasuryHandler.GovernanceProposals,
	}
	for path, handler := range treasuryRoutes {
		mux.Handle("/api/v1/admin/treasury/"+path, methodMux(map[string]http.Handler{
			http.MethodGet: adminOnly(handler),
		}))
	}

	var root http.Handler = mux
	root = middleware.Instrument()(root)
	root = middleware.RequestLogging(logger)(root)
	root = middleware.CorrelationID(logger)(root)
	return root
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}