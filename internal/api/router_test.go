package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

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
	"github.com/nguyenhuutu2898/admin-console-pro/internal/email"
	"github.com/nguyenhuutu2898/admin-console-pro/internal/storage/memory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := config.Config{Environment: "test"}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.JWTExpiry = time.Hour
	cfg.Auth.Issuer = "test"
	cfg.Server.BaseURL = "http://localhost:8080"

	logger := zerolog.Nop()

	store, err := memory.NewStore(memory.Options{})
	require.NoError(t, err)

	trail := audit.NewTrail(100, logger)
	mailer, err := email.NewService(cfg.Email, logger)
	require.NoError(t, err)

	overview, err := store.Diagnostics().Overview(t.Context())
	require.NoError(t, err)

	deps := Deps{
		Users:       users.NewService(store.Users(), trail, mailer, cfg.Server.BaseURL, logger),
		Orders:      orders.NewService(store.Orders()),
		Products:    products.NewService(store.Products()),
		Customers:   customers.NewService(store.Customers()),
		Dashboard:   dashboard.NewService(store.Orders(), store.Users(), overview.Uptime),
		Treasury:    treasury.NewService(store.Treasury()),
		Diagnostics: diagnostics.NewService(store.Diagnostics(), nil, trail),
		Trail:       trail,
		JWT:         auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.Issuer),
	}
	return NewRouter(cfg, logger, deps)
}

func login(t *testing.T, router http.Handler, emailAddr string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{"email": emailAddr, "password": "anything"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var payload struct {
		Token string     `json:"token"`
		User  users.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func get(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestLoginAndSessionRestore(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin@gmail.com")

	res := get(router, "/api/v1/auth/me", token)
	require.Equal(t, http.StatusOK, res.Code)

	var user users.User
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &user))
	require.Equal(t, "admin@gmail.com", user.Email)
	require.Equal(t, auth.RoleAdmin, user.Role)
}

func TestLoginUnknownEmailRejected(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewReader([]byte(`{"email":"ghost@example.com","password":"x"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	require.Equal(t, "application/problem+json", res.Header().Get("Content-Type"))
}

func TestCollectionsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/products",
		"/api/v1/customers",
		"/api/v1/dashboard/kpis",
	} {
		res := get(router, path, "")
		require.Equal(t, http.StatusUnauthorized, res.Code, path)
	}
}

func TestOrdersListWithDateWindow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "viewer@gmail.com")

	res := get(router, "/api/v1/orders?fromDate=2024-01-01&toDate=2024-03-31&limit=100", token)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var page struct {
		Data  []orders.Order `json:"data"`
		Total int            `json:"total"`
		Page  int            `json:"page"`
		Limit int            `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &page))
	require.NotEmpty(t, page.Data)
	for _, o := range page.Data {
		require.GreaterOrEqual(t, o.Date, "2024-01-01")
		require.LessOrEqual(t, o.Date, "2024-03-31")
	}
}

func TestOrdersListRejectsBadDate(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "viewer@gmail.com")

	res := get(router, "/api/v1/orders?fromDate=01/15/2024", token)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestProductCreateRequiresStaff(t *testing.T) {
	router := newTestRouter(t)
	viewerToken := login(t, router, "viewer@gmail.com")

	body := []byte(`{"name":"Gadget","price":19.9,"stock":5,"category":"Electronics"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+viewerToken)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusForbidden, res.Code)

	staffToken := login(t, router, "staff@gmail.com")
	req = httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+staffToken)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	var product products.Product
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &product))
	require.NotEmpty(t, product.ID)
	require.Equal(t, "Gadget", product.Name)
}

func TestAdminRoutesForbiddenForStaff(t *testing.T) {
	router := newTestRouter(t)
	staffToken := login(t, router, "staff@gmail.com")

	for _, path := range []string{
		"/api/v1/admin/users",
		"/api/v1/admin/system/overview",
		"/api/v1/admin/treasury/coin-metrics",
	} {
		res := get(router, path, staffToken)
		require.Equal(t, http.StatusForbidden, res.Code, path)
	}
}

func TestAdminInviteAndRoleChange(t *testing.T) {
	router := newTestRouter(t)
	adminToken := login(t, router, "admin@gmail.com")

	body := []byte(`{"name":"New Member","email":"new.member@example.com","role":"STAFF"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusCreated, res.Code, res.Body.String())

	var invited users.User
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &invited))
	require.Equal(t, users.StatusInvited, invited.Status)

	// Inviting the same email again conflicts.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/users", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusConflict, res.Code)

	roleBody := []byte(`{"role":"ADMIN"}`)
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/"+invited.ID+"/role", bytes.NewReader(roleBody))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	res = httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())

	var updated users.User
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &updated))
	require.Equal(t, auth.RoleAdmin, updated.Role)
}

func TestAdminAuditLogCapturesLogins(t *testing.T) {
	router := newTestRouter(t)
	adminToken := login(t, router, "admin@gmail.com")

	res := get(router, "/api/v1/admin/system/audit-logs", adminToken)
	require.Equal(t, http.StatusOK, res.Code)

	var entries []audit.Entry
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &entries))
	require.NotEmpty(t, entries)
	require.Equal(t, "User Login", entries[0].Action)
}

func TestTreasuryEndpoints(t *testing.T) {
	router := newTestRouter(t)
	adminToken := login(t, router, "admin@gmail.com")

	paths := []string{
		"/api/v1/admin/treasury/coin-metrics",
		"/api/v1/admin/treasury/snapshot",
		"/api/v1/admin/treasury/liquidity-pools",
		"/api/v1/admin/treasury/market-makers",
		"/api/v1/admin/treasury/nodes",
		"/api/v1/admin/treasury/risk-alerts",
		"/api/v1/admin/treasury/compliance-tasks",
		"/api/v1/admin/treasury/wallet-activity",
		"/api/v1/admin/treasury/release-schedule",
		"/api/v1/admin/treasury/governance-proposals",
	}
	for _, path := range paths {
		res := get(router, path, adminToken)
		require.Equal(t, http.StatusOK, res.Code, path)
		require.NotEmpty(t, res.Body.Bytes(), path)
	}
}

func TestDashboardKPIs(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "viewer@gmail.com")

	res := get(router, "/api/v1/dashboard/kpis", token)
	require.Equal(t, http.StatusOK, res.Code)

	var kpis dashboard.KPIs
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &kpis))
	require.Greater(t, kpis.TotalOrders, 0)
	require.Greater(t, kpis.TotalRevenue, 0.0)
	require.Equal(t, 3, kpis.TotalUsers)
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/orders", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusMethodNotAllowed, res.Code)
	require.Equal(t, "GET", res.Header().Get("Allow"))
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		res := get(router, path, "")
		require.Equal(t, http.StatusOK, res.Code, path)
	}
}
