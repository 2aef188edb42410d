package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alianza-shop/auth"
	httpapi "alianza-shop/shop-svc/internal/api/http"
	"alianza-shop/shop-svc/internal/cart"
	"alianza-shop/shop-svc/internal/checkout"
	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/mocks"
	"alianza-shop/shop-svc/internal/service"
	"alianza-shop/shop-svc/internal/settings"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(handler *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.CategoryRepository)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"name":"Vacuno","description":"Cortes de vacuno","order":1,"is_visible":true}`,
			setupMock: func(m *mocks.CategoryRepository) {
				m.On("CreateCategory", mock.AnythingOfType("*domain.Category")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.CategoryRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "validation error",
			body:      `{"name":"Vacuno"}`,
			setupMock: func(m *mocks.CategoryRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "database error",
			body: `{"name":"Vacuno","description":"Cortes"}`,
			setupMock: func(m *mocks.CategoryRepository) {
				m.On("CreateCategory", mock.AnythingOfType("*domain.Category")).Return(errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.CategoryRepository)
			handler := httpapi.NewHandler(httpapi.Services{Categories: service.NewCategoryService(mockRepo)}, nil, nil)
			testCase.setupMock(mockRepo)

			req := httptest.NewRequest("POST", "/api/admin/categories", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetProductHandler(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		mockProduct *domain.Product
		mockError   error
		wantCode    int
	}{
		{
			name:        "visible product",
			id:          "1",
			mockProduct: &domain.Product{ID: 1, Name: "Lomo vetado", IsVisible: true},
			wantCode:    http.StatusOK,
		},
		{
			name:     "hidden product",
			id:          "2",
			mockProduct: &domain.Product{ID: 2, Name: "Secreto", IsVisible: false},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "missing product",
			id:        "3",
			mockError: domain.ErrNotFound,
			wantCode:  http.StatusNotFound,
		},
		{
			name:     "bad id",
			id:       "abc",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.ProductRepository)
			handler := httpapi.NewHandler(httpapi.Services{Products: service.NewProductService(mockRepo)}, nil, nil)
			if testCase.mockProduct != nil || testCase.mockError != nil {
				mockRepo.On("GetProduct", mock.AnythingOfType("int")).Return(testCase.mockProduct, testCase.mockError).Once()
			}

			w := serve(handler, httptest.NewRequest("GET", "/api/products/"+testCase.id, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSetProductVisibilityIsIdempotent(t *testing.T) {
	mockRepo := new(mocks.ProductRepository)
	handler := httpapi.NewHandler(httpapi.Services{Products: service.NewProductService(mockRepo)}, nil, nil)
	mockRepo.On("SetProductVisibility", 5, false).Return(int64(1), nil).Twice()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("PUT", "/api/admin/products/5/visibility", bytes.NewBufferString(`{"is_visible":false}`))
		w := serve(handler, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	mockRepo.AssertExpectations(t)
}

type checkoutMocks struct {
	carts     *mocks.CartStore
	settings  *mocks.SettingsProvider
	zones     *mocks.ZoneRepository
	customers *mocks.CustomerRepository
	orders    *mocks.OrderRepository
	coupons   *mocks.CouponClient
	products  *mocks.ProductRepository
	offers    *mocks.OfferRepository
}

func newCheckoutHandler(minimum float64) (*httpapi.Handler, *checkoutMocks) {
	m := &checkoutMocks{
		carts:     new(mocks.CartStore),
		settings:  new(mocks.SettingsProvider),
		zones:     new(mocks.ZoneRepository),
		customers: new(mocks.CustomerRepository),
		orders:    new(mocks.OrderRepository),
		coupons:   new(mocks.CouponClient),
		products:  new(mocks.ProductRepository),
		offers:    new(mocks.OfferRepository),
	}
	cfg := settings.Defaults()
	cfg.MinimumOrder = minimum
	cfg.AvailableCommunes = nil
	m.settings.On("Get", mock.Anything).Return(cfg).Maybe()

	now := func() time.Time { return time.Date(2024, 3, 15, 9, 5, 0, 0, time.UTC) }
	svc := checkout.NewService(checkout.Deps{
		Carts:     m.carts,
		Settings:  m.settings,
		Zones:     m.zones,
		Customers: m.customers,
		Orders:    m.orders,
		Coupons:   m.coupons,
		Now:       now,
	})
	handler := httpapi.NewHandler(httpapi.Services{
		Checkout:  svc,
		Products:  service.NewProductService(m.products),
		Offers:    service.NewOfferService(m.offers, now),
		Customers: service.NewCustomerService(m.customers),
	}, nil, nil)
	return handler, m
}

func TestAddCartItemHandler(t *testing.T) {
	lomo := &domain.Product{ID: 1, Name: "Lomo", Price: 10000, IsVisible: true, UnitType: domain.UnitKg}

	tests := []struct {
		name      string
		session   string
		body      string
		product   *domain.Product
		offers    []domain.DailyOffer
		offersErr error
		wantCode  int
		wantSaved bool
		wantTotal float64
	}{
		{
			name:      "adds to existing session",
			session:   "abc",
			body:      `{"product_id":1,"quantity":1.5}`,
			product:   lomo,
			wantCode:  http.StatusOK,
			wantSaved: true,
			wantTotal: 15000,
		},
		{
			name:      "offered product enters at the offer price",
			session:   "abc",
			body:      `{"product_id":1,"quantity":1.5}`,
			product:   lomo,
			offers:    []domain.DailyOffer{{ID: 4, ProductID: 1, DiscountPercentage: 20, OriginalPrice: 10000, DiscountedPrice: 8000}},
			wantCode:  http.StatusOK,
			wantSaved: true,
			wantTotal: 12000,
		},
		{
			name:      "offer for another product is ignored",
			session:   "abc",
			body:      `{"product_id":1,"quantity":1}`,
			product:   lomo,
			offers:    []domain.DailyOffer{{ID: 5, ProductID: 2, DiscountedPrice: 3000}},
			wantCode:  http.StatusOK,
			wantSaved: true,
			wantTotal: 10000,
		},
		{
			name:      "offers unavailable keeps list price",
			session:   "abc",
			body:      `{"product_id":1,"quantity":1}`,
			product:   lomo,
			offersErr: errors.New("db down"),
			wantCode:  http.StatusOK,
			wantSaved: true,
			wantTotal: 10000,
		},
		{
			name:     "quantity below minimum",
			session:  "abc",
			body:     `{"product_id":1,"quantity":0.05}`,
			product:  lomo,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "hidden product",
			session:  "abc",
			body:     `{"product_id":1,"quantity":1}`,
			product:  &domain.Product{ID: 1, Name: "Lomo", IsVisible: false},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler, m := newCheckoutHandler(0)
			m.products.On("GetProduct", 1).Return(testCase.product, nil).Once()
			if testCase.product.IsVisible {
				m.offers.On("ListActiveOffers", mock.Anything).Return(testCase.offers, testCase.offersErr).Once()
				m.carts.On("Load", mock.Anything, testCase.session).Return(cart.New(testCase.session), nil).Once()
			}
			if testCase.wantSaved {
				m.carts.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()
			}

			req := httptest.NewRequest("POST", "/api/cart/items", bytes.NewBufferString(testCase.body))
			req.Header.Set(httpapi.SessionHeader, testCase.session)
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.Equal(t, testCase.session, w.Header().Get(httpapi.SessionHeader))
			if testCase.wantSaved {
				var summary checkout.CartSummary
				require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
				assert.Equal(t, 1, summary.Count)
				assert.Equal(t, testCase.wantTotal, summary.Total)
			}
			assert.Equal(t, 10000.0, lomo.Price)
			m.carts.AssertExpectations(t)
			m.products.AssertExpectations(t)
			m.offers.AssertExpectations(t)
		})
	}
}

func TestSubmitOrderHandler(t *testing.T) {
	item := cart.Item{ProductID: 1, Name: "Lomo", Price: 10000, Quantity: 1}

	t.Run("field errors reported together", func(t *testing.T) {
		handler, m := newCheckoutHandler(0)
		c := cart.New("s1")
		m.carts.On("Load", mock.Anything, "s1").Return(c, nil).Once()

		req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set(httpapi.SessionHeader, "s1")
		w := serve(handler, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Contains(t, body.Errors, "phone")
		assert.Contains(t, body.Errors, "address")
		assert.Contains(t, body.Errors, "commune")
		assert.Contains(t, body.Errors, "cart")
		m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
	})

	t.Run("below minimum", func(t *testing.T) {
		handler, m := newCheckoutHandler(50000)
		c := cart.New("s2")
		c.Items = append(c.Items, item)
		m.carts.On("Load", mock.Anything, "s2").Return(c, nil).Once()
		m.zones.On("ListZones", true).Return([]domain.DeliveryZone{}, nil).Once()

		body := `{"name":"Ana","phone":"+56911112222","address":"Calle 1","commune":"Santiago"}`
		req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(body))
		req.Header.Set(httpapi.SessionHeader, "s2")
		w := serve(handler, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 50000.0, resp["minimum_order"])
		m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything)
	})

	t.Run("order created", func(t *testing.T) {
		handler, m := newCheckoutHandler(10000)
		c := cart.New("s3")
		c.Items = append(c.Items, item)
		m.carts.On("Load", mock.Anything, "s3").Return(c, nil).Once()
		m.zones.On("ListZones", true).Return([]domain.DeliveryZone{}, nil).Once()
		m.customers.On("GetCustomerByPhone", "+56911112222").Return(&domain.Customer{ID: 8}, nil).Once()
		m.customers.On("UpdateCustomer", mock.AnythingOfType("*domain.Customer")).Return(nil).Once()
		m.orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
		m.carts.On("Delete", mock.Anything, "s3").Return(nil).Once()

		body := `{"name":"Ana","phone":"+56911112222","address":"Calle 1","commune":"Santiago"}`
		req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString(body))
		req.Header.Set(httpapi.SessionHeader, "s3")
		w := serve(handler, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var confirmation checkout.Confirmation
		require.NoError(t, json.NewDecoder(w.Body).Decode(&confirmation))
		assert.Regexp(t, `^KT-20240315-0905-[0-9A-Z]{4}$`, confirmation.OrderID)
		assert.Equal(t, "ANA2222", confirmation.ClientCode)
		assert.Equal(t, 13000.0, confirmation.Total)
		m.carts.AssertExpectations(t)
		m.orders.AssertExpectations(t)
	})
}

func TestLookupCustomerHandler(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		setup    func(*mocks.CustomerRepository)
		wantCode int
	}{
		{
			name:  "known phone",
			query: "?phone=%2B56911112222",
			setup: func(m *mocks.CustomerRepository) {
				m.On("GetCustomerByPhone", "+56911112222").Return(&domain.Customer{ID: 1, Name: "Ana"}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "unknown phone",
			query: "?phone=123",
			setup: func(m *mocks.CustomerRepository) {
				m.On("GetCustomerByPhone", "123").Return(nil, domain.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "missing phone",
			query:    "",
			setup:    func(m *mocks.CustomerRepository) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.CustomerRepository)
			testCase.setup(mockRepo)
			handler := httpapi.NewHandler(httpapi.Services{Customers: service.NewCustomerService(mockRepo)}, nil, nil)

			w := serve(handler, httptest.NewRequest("GET", "/api/customers/lookup"+testCase.query, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(*mocks.OrderRepository)
		wantCode int
	}{
		{
			name: "valid transition",
			body: `{"status":"preparing"}`,
			setup: func(m *mocks.OrderRepository) {
				m.On("UpdateOrderStatus", "KT-1", domain.StatusPreparing).Return(int64(1), nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown status",
			body:     `{"status":"lost"}`,
			setup:    func(m *mocks.OrderRepository) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown order",
			body: `{"status":"delivered"}`,
			setup: func(m *mocks.OrderRepository) {
				m.On("UpdateOrderStatus", "KT-1", domain.StatusDelivered).Return(int64(0), nil).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			testCase.setup(mockRepo)
			handler := httpapi.NewHandler(httpapi.Services{Orders: service.NewOrderService(mockRepo, nil, nil, nil)}, nil, nil)

			req := httptest.NewRequest("PUT", "/api/admin/orders/KT-1/status", bytes.NewBufferString(testCase.body))
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetOrderQRCodeHandler(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	orderToken, _, err := issuer.IssueFor(auth.RoleOrder, "KT-1", time.Hour)
	require.NoError(t, err)
	otherOrderToken, _, err := issuer.IssueFor(auth.RoleOrder, "KT-2", time.Hour)
	require.NoError(t, err)
	adminToken, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantBody string
	}{
		{name: "no token", query: "", wantCode: http.StatusUnauthorized},
		{name: "garbage token", query: "?token=abc", wantCode: http.StatusUnauthorized},
		{name: "admin token", query: "?token=" + adminToken, wantCode: http.StatusUnauthorized},
		{name: "token for another order", query: "?token=" + otherOrderToken, wantCode: http.StatusForbidden},
		{name: "token for this order", query: "?token=" + orderToken, wantCode: http.StatusOK, wantBody: "png-bytes"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			handler := httpapi.NewHandler(httpapi.Services{Orders: service.NewOrderService(mockRepo, nil, nil, nil)}, nil, nil)
			handler.OrderTokens = issuer
			if testCase.wantCode == http.StatusOK {
				mockRepo.On("GetQRCode", "KT-1").Return([]byte("png-bytes"), nil).Once()
			}

			w := serve(handler, httptest.NewRequest("GET", "/api/orders/KT-1/qrcode"+testCase.query, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
				assert.Equal(t, testCase.wantBody, w.Body.String())
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAdminRoutesRequireBearerToken(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	token, _, err := issuer.Issue("admin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{name: "no header", header: "", wantCode: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.ZoneRepository)
			mockRepo.On("ListZones", false).Return([]domain.DeliveryZone{}, nil).Maybe()
			handler := httpapi.NewHandler(httpapi.Services{Zones: service.NewZoneService(mockRepo)}, issuer.Middleware, nil)

			req := httptest.NewRequest("GET", "/api/admin/delivery-zones", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	issuer := auth.NewIssuer("secret", time.Hour)
	hash, err := auth.HashPassword("carniceria123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "valid credentials", body: `{"username":"admin","password":"carniceria123"}`, wantCode: http.StatusOK},
		{name: "wrong password", body: `{"username":"admin","password":"nope"}`, wantCode: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.AdminRepository)
			mockRepo.On("GetAdminByUsername", "admin").Return(&domain.AdminUser{ID: 1, Username: "admin", PasswordHash: hash}, nil).Once()
			authSvc := service.NewAuthService(mockRepo, issuer, auth.CheckPassword)
			handler := httpapi.NewHandler(httpapi.Services{Auth: authSvc}, issuer.Middleware, nil)

			w := serve(handler, httptest.NewRequest("POST", "/api/admin/login", bytes.NewBufferString(testCase.body)))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var result service.LoginResult
				require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
				claims, err := issuer.Verify(result.Token)
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
