package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"alianza-shop/auth"
	"alianza-shop/shop-svc/internal/cart"
	"alianza-shop/shop-svc/internal/checkout"
	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Services groups everything the handlers call. Nil members are allowed as
// long as the matching routes are not exercised.
type Services struct {
	Categories service.CategoryServiceInterface
	Products   service.ProductServiceInterface
	Offers     service.OfferServiceInterface
	Customers  service.CustomerServiceInterface
	Orders     service.OrderServiceInterface
	Zones      service.ZoneServiceInterface
	Locations  service.LocationServiceInterface
	Config     service.ConfigServiceInterface
	Auth       service.AuthServiceInterface
	Checkout   service.CheckoutServiceInterface
}

// TokenAuthorizer checks a token against a role. *auth.Issuer satisfies it.
type TokenAuthorizer interface {
	Authorize(token, role string) (*auth.Claims, error)
}

// Handler serves the shop API. OrderTokens gates customer access to per-order
// assets; without it those routes refuse every request.
type Handler struct {
	Services
	RequireAdmin mux.MiddlewareFunc
	OrderTokens  TokenAuthorizer
	UploadDir    string
	logger       *zap.Logger
}

func NewHandler(svcs Services, requireAdmin mux.MiddlewareFunc, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Services:     svcs,
		RequireAdmin: requireAdmin,
		UploadDir:    "./uploads",
		logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/settings", h.getSettings).Methods("GET")

	r.HandleFunc("/api/categories", h.getVisibleCategories).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.getCategory).Methods("GET")
	r.HandleFunc("/api/categories/{id}/products", h.getCategoryProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.getProduct).Methods("GET")
	r.HandleFunc("/api/search", h.searchProducts).Methods("GET")
	r.HandleFunc("/api/offers", h.getTodayOffers).Methods("GET")
	r.HandleFunc("/api/delivery-zones", h.getActiveZones).Methods("GET")
	r.HandleFunc("/api/locations", h.getActiveLocations).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/items/{productId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/checkout/quote", h.quote).Methods("POST")
	r.HandleFunc("/api/checkout/coupon", h.applyCoupon).Methods("POST")
	r.HandleFunc("/api/checkout", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/customers/lookup", h.lookupCustomer).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/admin/login", h.login).Methods("POST")

	admin := r.PathPrefix("/api/admin").Subrouter()
	if h.RequireAdmin != nil {
		admin.Use(h.RequireAdmin)
	}
	h.registerAdminRoutes(admin)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "shop-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Config.Settings(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeError maps service errors onto status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var fieldErr *checkout.ValidationError
	var belowMin *checkout.BelowMinimumError

	switch {
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  fieldErr.Error(),
			"errors": fieldErr.Fields,
		})
	case errors.As(err, &belowMin):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         belowMin.Error(),
			"total":         belowMin.Total,
			"minimum_order": belowMin.Minimum,
		})
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, cart.ErrQuantityTooSmall),
		errors.Is(err, checkout.ErrCouponRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, cart.ErrItemNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	default:
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
