package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"alianza-shop/coupon-svc/internal/domain"
	"alianza-shop/coupon-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Coupons        service.CouponServiceInterface
	RequireAdmin   mux.MiddlewareFunc
	RequireService mux.MiddlewareFunc
	logger         *zap.Logger
}

// NewHandler wires the coupon routes. Usage reports come from the order
// flow only and sit behind requireService.
func NewHandler(coupons service.CouponServiceInterface, requireAdmin, requireService mux.MiddlewareFunc, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Coupons: coupons, RequireAdmin: requireAdmin, RequireService: requireService, logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/coupons/validate", h.validateCoupon).Methods("POST")

	internal := r.PathPrefix("/api/coupons/use").Subrouter()
	if h.RequireService != nil {
		internal.Use(h.RequireService)
	}
	internal.HandleFunc("", h.useCoupon).Methods("POST")

	admin := r.PathPrefix("/api/admin/coupons").Subrouter()
	if h.RequireAdmin != nil {
		admin.Use(h.RequireAdmin)
	}
	admin.HandleFunc("", h.listCoupons).Methods("GET")
	admin.HandleFunc("", h.createCoupon).Methods("POST")
	admin.HandleFunc("/{id}", h.getCoupon).Methods("GET")
	admin.HandleFunc("/{id}", h.updateCoupon).Methods("PUT")
	admin.HandleFunc("/{id}", h.deleteCoupon).Methods("DELETE")
	admin.HandleFunc("/{id}/status", h.setCouponStatus).Methods("PUT")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "coupon-svc"})
}

func (h *Handler) validateCoupon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string  `json:"code"`
		OrderTotal float64 `json:"order_total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	result, err := h.Coupons.Validate(req.Code, req.OrderTotal)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) useCoupon(w http.ResponseWriter, r *http.Request) {
	var usage domain.Usage
	if err := json.NewDecoder(r.Body).Decode(&usage); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	recorded, err := h.Coupons.Use(r.Context(), &usage)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"recorded": recorded, "order_id": usage.OrderID})
}

func (h *Handler) listCoupons(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))
	coupons, err := h.Coupons.List(activeOnly)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupons)
}

func (h *Handler) getCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	coupon, err := h.Coupons.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) createCoupon(w http.ResponseWriter, r *http.Request) {
	coupon := domain.Coupon{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Coupons.Create(&coupon); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, coupon)
}

func (h *Handler) updateCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var coupon domain.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	coupon.ID = id
	if err := h.Coupons.Update(&coupon); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coupon)
}

func (h *Handler) deleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Coupons.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setCouponStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		http.Error(w, "is_active is required", http.StatusBadRequest)
		return
	}
	if err := h.Coupons.SetActive(id, *req.IsActive); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_active": *req.IsActive})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid coupon id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateCode):
		http.Error(w, "Ya existe un cupón con este código", http.StatusConflict)
	default:
		h.logger.Error("request failed", zap.Error(err))
		http.Error(w, "Internal error, please retry", http.StatusInternalServerError)
	}
}
