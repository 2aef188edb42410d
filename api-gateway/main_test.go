package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alianza-shop/config"

	"go.uber.org/zap"
)

func newTestConfig(shop, coupons, analytics string) *config.Config {
	return &config.Config{
		ShopSvcURL:      shop,
		CouponSvcURL:    coupons,
		AnalyticsSvcURL: analytics,
		PublicBaseURL:   "http://localhost:8080",
		FrontendDir:     "./frontend",
	}
}

// TestHealthCheck verifies the basic JSON payload and status.
func TestHealthCheck(t *testing.T) {
	handler := buildHandler(newTestConfig("", "", ""), http.DefaultClient, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != "api-gateway" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

// TestRouting sends requests through real upstream servers.
func TestRouting(t *testing.T) {
	backend := func(name string, hit *string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*hit = name + " " + r.URL.RequestURI()
			w.WriteHeader(http.StatusOK)
		}))
	}

	var hit string
	shop := backend("shop", &hit)
	defer shop.Close()
	coupons := backend("coupons", &hit)
	defer coupons.Close()
	analytics := backend("analytics", &hit)
	defer analytics.Close()

	handler := buildHandler(newTestConfig(shop.URL, coupons.URL, analytics.URL), http.DefaultClient, zap.NewNop())

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/api/coupons/validate", "coupons /api/coupons/validate"},
		{http.MethodGet, "/api/admin/coupons?active=true", "coupons /api/admin/coupons?active=true"},
		{http.MethodGet, "/api/admin/analytics/top-products?limit=3", "analytics /api/admin/analytics/top-products?limit=3"},
		{http.MethodPost, "/api/checkout", "shop /api/checkout"},
		{http.MethodGet, "/uploads/lomo.png", "shop /uploads/lomo.png"},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			hit = ""
			req := httptest.NewRequest(testCase.method, testCase.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
			if hit != testCase.want {
				t.Fatalf("expected %q, got %q", testCase.want, hit)
			}
		})
	}
}

// TestCouponUsageNotProxied keeps usage reports off the public surface.
func TestCouponUsageNotProxied(t *testing.T) {
	hit := false
	coupons := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(http.StatusOK)
	}))
	defer coupons.Close()

	handler := buildHandler(newTestConfig(coupons.URL, coupons.URL, coupons.URL), http.DefaultClient, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/coupons/use", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if hit {
		t.Fatalf("usage report reached the coupon service")
	}
}

// TestUpstreamDown maps connection failures to 502.
func TestUpstreamDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	down.Close()

	handler := buildHandler(newTestConfig(down.URL, down.URL, down.URL), http.DefaultClient, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}
