package httpapi

import (
	"net/http"

	"alianza-shop/shop-svc/internal/domain"

	"github.com/gorilla/mux"
)

// registerAdminRoutes mounts the back-office endpoints on a router already
// scoped to /api/admin.
func (h *Handler) registerAdminRoutes(r *mux.Router) {
	r.HandleFunc("/categories", h.getAllCategories).Methods("GET")
	r.HandleFunc("/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/categories/{id}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/categories/{id}", h.deleteCategory).Methods("DELETE")
	r.HandleFunc("/categories/{id}/visibility", h.setCategoryVisibility).Methods("PUT")

	r.HandleFunc("/products", h.getAllProducts).Methods("GET")
	r.HandleFunc("/products", h.createProduct).Methods("POST")
	r.HandleFunc("/products/{id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/products/{id}", h.deleteProduct).Methods("DELETE")
	r.HandleFunc("/products/{id}/visibility", h.setProductVisibility).Methods("PUT")
	r.HandleFunc("/products/{id}/stock", h.updateProductStock).Methods("PUT")
	r.HandleFunc("/uploads", h.uploadImage).Methods("POST")

	r.HandleFunc("/offers", h.getAllOffers).Methods("GET")
	r.HandleFunc("/offers", h.createOffer).Methods("POST")
	r.HandleFunc("/offers/{id}", h.updateOffer).Methods("PUT")
	r.HandleFunc("/offers/{id}", h.deleteOffer).Methods("DELETE")
	r.HandleFunc("/offers/{id}/status", h.setOfferStatus).Methods("PUT")

	r.HandleFunc("/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PUT")

	r.HandleFunc("/customers", h.getCustomers).Methods("GET")
	r.HandleFunc("/customers/{id}", h.getCustomer).Methods("GET")
	r.HandleFunc("/customers/{id}", h.updateCustomer).Methods("PUT")

	r.HandleFunc("/delivery-zones", h.getAllZones).Methods("GET")
	r.HandleFunc("/delivery-zones", h.createZone).Methods("POST")
	r.HandleFunc("/delivery-zones/{id}", h.updateZone).Methods("PUT")
	r.HandleFunc("/delivery-zones/{id}/status", h.setZoneStatus).Methods("PUT")

	r.HandleFunc("/locations", h.getAllLocations).Methods("GET")
	r.HandleFunc("/locations", h.createLocation).Methods("POST")
	r.HandleFunc("/locations/{id}", h.updateLocation).Methods("PUT")
	r.HandleFunc("/locations/{id}", h.deleteLocation).Methods("DELETE")
	r.HandleFunc("/locations/{id}/status", h.setLocationStatus).Methods("PUT")

	r.HandleFunc("/configurations", h.getConfigurations).Methods("GET")
	r.HandleFunc("/configurations/{key}", h.upsertConfiguration).Methods("PUT")
	r.HandleFunc("/configurations/{key}", h.deleteConfiguration).Methods("DELETE")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}
	result, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.Orders.UpdateStatus(orderID, req.Status); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": orderID, "status": req.Status})
}

func (h *Handler) getCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Customers.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	customer, err := h.Customers.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var c domain.Customer
	if !decode(w, r, &c) {
		return
	}
	c.ID = id
	if err := h.Customers.Update(&c); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) getAllZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Zones.ListAll()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, zones)
}

func (h *Handler) createZone(w http.ResponseWriter, r *http.Request) {
	var z domain.DeliveryZone
	if !decode(w, r, &z) {
		return
	}
	if err := h.Zones.Create(&z); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, z)
}

func (h *Handler) updateZone(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var z domain.DeliveryZone
	if !decode(w, r, &z) {
		return
	}
	z.ID = id
	if err := h.Zones.Update(&z); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, z)
}

func (h *Handler) setZoneStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.Zones.SetActive(id, req.IsActive); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_active": req.IsActive})
}

func (h *Handler) getAllLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.Locations.ListAll()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	var l domain.StoreLocation
	if !decode(w, r, &l) {
		return
	}
	if err := h.Locations.Create(&l); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (h *Handler) updateLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var l domain.StoreLocation
	if !decode(w, r, &l) {
		return
	}
	l.ID = id
	if err := h.Locations.Update(&l); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Locations.Delete(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setLocationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.Locations.SetActive(id, req.IsActive); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "is_active": req.IsActive})
}

func (h *Handler) getConfigurations(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Config.List()
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) upsertConfiguration(w http.ResponseWriter, r *http.Request) {
	var e domain.ConfigEntry
	if !decode(w, r, &e) {
		return
	}
	e.Key = mux.Vars(r)["key"]
	if err := h.Config.Upsert(r.Context(), &e); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) deleteConfiguration(w http.ResponseWriter, r *http.Request) {
	if err := h.Config.Delete(r.Context(), mux.Vars(r)["key"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
