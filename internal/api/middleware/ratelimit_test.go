package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyenhuutu2898/admin-console-pro/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoginRateLimit_AllowsInitialBurst(t *testing.T) {
	cfg := config.RateLimitConfig{LoginPer15Minutes: 5}
	handler := RateLimit(cfg)(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		req = req.WithContext(WithRateLimitTier(req.Context(), TierLogin))
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, res.Code)
		}
	}
}

func TestLoginRateLimit_BlocksAfterBurst(t *testing.T) {
	cfg := config.RateLimitConfig{LoginPer15Minutes: 5}
	handler := RateLimit(cfg)(okHandler())

	clientIP := "192.168.1.101:54321"

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = clientIP
		req = req.WithContext(WithRateLimitTier(req.Context(), TierLogin))
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = clientIP
	req = req.WithContext(WithRateLimitTier(req.Context(), TierLogin))
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if res.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", res.Code)
	}
	if got := res.Header().Get("Retry-After"); got != "90" {
		t.Errorf("expected Retry-After 90, got %s", got)
	}
}

func TestRateLimit_SeparateClientsSeparateBuckets(t *testing.T) {
	cfg := config.RateLimitConfig{LoginPer15Minutes: 1}
	handler := RateLimit(cfg)(okHandler())

	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		req = req.WithContext(WithRateLimitTier(req.Context(), TierLogin))
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("client %s: expected 200, got %d", addr, res.Code)
		}
	}
}

func TestRateLimit_ZeroLimitIsUnlimited(t *testing.T) {
	cfg := config.RateLimitConfig{}
	handler := RateLimit(cfg)(okHandler())

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req.RemoteAddr = "10.0.0.3:2000"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, res.Code)
		}
	}
}

func TestRateLimit_HealthProbesExempt(t *testing.T) {
	cfg := config.RateLimitConfig{PublicPerMinute: 1}
	handler := RateLimit(cfg)(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.0.0.4:3000"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		if res.Code != http.StatusOK {
			t.Fatalf("probe %d: expected 200, got %d", i+1, res.Code)
		}
	}
}
