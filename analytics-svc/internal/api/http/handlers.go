package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"alianza-shop/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics    service.AnalyticsInterface
	RequireAdmin mux.MiddlewareFunc
}

func NewHandler(svc service.AnalyticsInterface, requireAdmin mux.MiddlewareFunc) *Handler {
	return &Handler{Analytics: svc, RequireAdmin: requireAdmin}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "service": "analytics-svc"})
	}).Methods("GET")

	admin := r.PathPrefix("/api/admin/analytics").Subrouter()
	if h.RequireAdmin != nil {
		admin.Use(h.RequireAdmin)
	}
	admin.HandleFunc("/daily", h.getDaily).Methods("GET")
	admin.HandleFunc("/top-products", h.getTopProducts).Methods("GET")
	admin.HandleFunc("/inventory-alerts", h.getInventoryAlerts).Methods("GET")
	admin.HandleFunc("/frequent-customers", h.getFrequentCustomers).Methods("GET")
	admin.HandleFunc("/sales-by-category", h.getSalesByCategory).Methods("GET")
	admin.HandleFunc("/summary", h.getSummary).Methods("GET")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// queryInt returns 0 for missing or malformed values; the service applies defaults.
func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Analytics.Daily(queryInt(r, "days")))
}

func (h *Handler) getTopProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Analytics.TopProducts(r.Context(), queryInt(r, "limit")))
}

func (h *Handler) getInventoryAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Analytics.InventoryAlerts())
}

func (h *Handler) getFrequentCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Analytics.FrequentCustomers(queryInt(r, "limit")))
}

func (h *Handler) getSalesByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Analytics.SalesByCategory())
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Analytics.Summary(queryInt(r, "days")))
}
