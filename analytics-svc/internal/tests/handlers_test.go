package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "alianza-shop/analytics-svc/internal/api/http"
	"alianza-shop/analytics-svc/internal/domain"
	"alianza-shop/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(mockSvc *mocks.AnalyticsInterface, requireAdmin mux.MiddlewareFunc) *mux.Router {
	handler := httpapi.NewHandler(mockSvc, requireAdmin)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandler_reports(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	router := setupTestRouter(mockSvc, nil)

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedBody string
	}{
		{
			name: "daily",
			path: "/api/admin/analytics/daily?days=7",
			prepareMocks: func() {
				mockSvc.On("Daily", 7).Return([]domain.DailyAnalytics{{Date: "2024-03-15", TotalOrders: 2}}).Once()
			},
			expectedBody: `"total_orders":2`,
		},
		{
			name: "top_products_with_limit",
			path: "/api/admin/analytics/top-products?limit=3",
			prepareMocks: func() {
				mockSvc.On("TopProducts", mock.Anything, 3).Return([]domain.ProductSales{{ProductID: 1, Name: "Lomo"}}).Once()
			},
			expectedBody: `"name":"Lomo"`,
		},
		{
			name: "malformed_limit_uses_default",
			path: "/api/admin/analytics/frequent-customers?limit=abc",
			prepareMocks: func() {
				mockSvc.On("FrequentCustomers", 0).Return([]domain.FrequentCustomer{}).Once()
			},
			expectedBody: `[]`,
		},
		{
			name: "inventory_alerts",
			path: "/api/admin/analytics/inventory-alerts",
			prepareMocks: func() {
				mockSvc.On("InventoryAlerts").Return([]domain.InventoryAlert{{ID: 3, Stock: 2}}).Once()
			},
			expectedBody: `"stock":2`,
		},
		{
			name: "sales_by_category",
			path: "/api/admin/analytics/sales-by-category",
			prepareMocks: func() {
				mockSvc.On("SalesByCategory").Return([]domain.CategorySales{{Category: "Vacuno", Percentage: 100}}).Once()
			},
			expectedBody: `"percentage":100`,
		},
		{
			name: "summary",
			path: "/api/admin/analytics/summary",
			prepareMocks: func() {
				mockSvc.On("Summary", 0).Return(domain.Summary{Days: 30, TotalOrders: 4}).Once()
			},
			expectedBody: `"days":30`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			rr := get(router, testCase.path)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), testCase.expectedBody)
		})
	}
}

func TestHandler_adminMiddlewareApplied(t *testing.T) {
	mockSvc := mocks.NewAnalyticsInterface(t)
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
	}
	router := setupTestRouter(mockSvc, deny)

	rr := get(router, "/api/admin/analytics/daily")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = get(router, "/health")
	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "analytics-svc", body["service"])
}
