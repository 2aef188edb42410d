package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alianza-shop/auth"
	"alianza-shop/config"
	"alianza-shop/coupon-svc/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var testConfig = &config.Config{
	JWTSecret: "test-secret",
	JWTTTL:    time.Hour,
}

var couponRowColumns = []string{
	"id", "code", "name", "description", "discount_type", "discount_value", "min_order_amount",
	"max_discount_amount", "usage_limit", "used_count", "start_date", "end_date", "is_active", "created_at",
}

// helper wiring the handler to sqlmock and miniredis, with events disabled.
func setupTestHandler(t *testing.T) (sqlmock.Sqlmock, *miniredis.Miniredis, http.Handler) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return mock, mr, buildHandler(testConfig, mockDB, rdb, nil, zap.NewNop())
}

func postJSON(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	return postJSONWithToken(handler, path, body, "")
}

func postJSONWithToken(handler http.Handler, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestValidate_UnknownCode(t *testing.T) {
	mock, _, handler := setupTestHandler(t)

	mock.ExpectQuery("FROM coupons WHERE code").
		WithArgs("NOEXISTE").
		WillReturnError(sql.ErrNoRows)

	rr := postJSON(handler, "/api/coupons/validate", `{"code":" noexiste ","order_total":30000}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var result map[string]interface{}
	json.NewDecoder(rr.Body).Decode(&result)
	if result["valid"] != false || result["message"] != service.MsgUnknown {
		t.Fatalf("expected invalid result with message, got %v", result)
	}
}

func TestValidate_PercentageCappedByMaximum(t *testing.T) {
	mock, _, handler := setupTestHandler(t)

	mock.ExpectQuery("FROM coupons WHERE code").
		WithArgs("PARRILLA20").
		WillReturnRows(sqlmock.NewRows(couponRowColumns).
			AddRow(3, "PARRILLA20", "Parrilla", "", "percentage", 20.0, 10000.0,
				5000.0, nil, 0, nil, nil, true, time.Now()))

	rr := postJSON(handler, "/api/coupons/validate", `{"code":"parrilla20","order_total":40000}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var result struct {
		Valid          bool    `json:"valid"`
		DiscountAmount float64 `json:"discount_amount"`
		CouponID       int     `json:"coupon_id"`
	}
	json.NewDecoder(rr.Body).Decode(&result)
	if !result.Valid || result.DiscountAmount != 5000 || result.CouponID != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestUse_SecondReportIsNoop(t *testing.T) {
	mock, mr, handler := setupTestHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM coupons").
		WithArgs("AHORRA").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec("INSERT INTO coupon_usage").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE coupons SET used_count").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	token, _, err := auth.NewIssuer(testConfig.JWTSecret, time.Hour).IssueFor(auth.RoleService, "shop-svc", time.Minute)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	body := `{"code":"AHORRA","order_id":"KT-20240315-1430-AB12","discount_amount":2000}`

	first := postJSONWithToken(handler, "/api/coupons/use", body, token)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", first.Code, first.Body.String())
	}
	if !mr.Exists("coupon:used:AHORRA:KT-20240315-1430-AB12") {
		t.Fatalf("expected usage marker to be set")
	}

	second := postJSONWithToken(handler, "/api/coupons/use", body, token)
	var result map[string]interface{}
	json.NewDecoder(second.Body).Decode(&result)
	if second.Code != http.StatusOK || result["recorded"] != false {
		t.Fatalf("expected no-op on repeated report, got %d %v", second.Code, result)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUse_RejectsAnonymousReport(t *testing.T) {
	mock, _, handler := setupTestHandler(t)

	rr := postJSON(handler, "/api/coupons/use", `{"code":"AHORRA","order_id":"KT-20240315-1430-AB12","discount_amount":2000}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database calls: %v", err)
	}
}

func TestAdminCouponsRequireToken(t *testing.T) {
	mock, _, handler := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coupons", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}

	token, _, err := auth.NewIssuer(testConfig.JWTSecret, time.Hour).Issue("admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	mock.ExpectQuery("FROM coupons").
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(couponRowColumns))

	req = httptest.NewRequest(http.MethodGet, "/api/admin/coupons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rr.Code)
	}
}
