package httpapi

import (
	"net/http"
	"strings"

	"alianza-shop/auth"
	"alianza-shop/shop-svc/internal/checkout"
	"alianza-shop/shop-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const SessionHeader = "X-Cart-Session"

// session reads the cart session id, issuing a new one when the client has none.
// The id is always echoed back so the client can persist it.
func session(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(SessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)
	return id
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	c, err := h.Checkout.Cart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkout.Summarize(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	if err := h.Checkout.ClearCart(r.Context(), sessionID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type cartItemRequest struct {
	ProductID int     `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	var req cartItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.Products.Get(req.ProductID)
	if err == nil && !product.IsVisible {
		err = domain.ErrNotFound
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	product = h.offerPrice(product)

	c, err := h.Checkout.AddItem(r.Context(), sessionID, product, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkout.Summarize(c))
}

// offerPrice swaps in today's offer price. When offers cannot be read the
// list price is kept.
func (h *Handler) offerPrice(product *domain.Product) *domain.Product {
	if h.Offers == nil {
		return product
	}
	offer, err := h.Offers.ActiveFor(product.ID)
	if err != nil {
		h.logger.Warn("failed to load offers, using list price", zap.Int("product_id", product.ID), zap.Error(err))
		return product
	}
	if offer == nil {
		return product
	}
	priced := *product
	priced.Price = offer.DiscountedPrice
	return &priced
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	var req cartItemRequest
	if !decode(w, r, &req) {
		return
	}
	c, err := h.Checkout.SetQuantity(r.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkout.Summarize(c))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}
	c, err := h.Checkout.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, checkout.Summarize(c))
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	var req struct {
		Commune    string `json:"commune"`
		CouponCode string `json:"coupon_code"`
	}
	if !decode(w, r, &req) {
		return
	}
	q, err := h.Checkout.Quote(r.Context(), sessionID, req.Commune, req.CouponCode)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	var req struct {
		Code string `json:"code"`
	}
	if !decode(w, r, &req) {
		return
	}
	c, err := h.Checkout.Cart(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	result, err := h.Checkout.ApplyCoupon(r.Context(), req.Code, c.Total())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := session(w, r)
	var form checkout.Form
	if !decode(w, r, &form) {
		return
	}
	confirmation, err := h.Checkout.Submit(r.Context(), sessionID, form)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *Handler) lookupCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.Customers.Lookup(r.URL.Query().Get("phone"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// getOrderQRCode serves the order's QR code to holders of the token issued at
// checkout for that order.
func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	token := r.URL.Query().Get("token")
	if token == "" || h.OrderTokens == nil {
		http.Error(w, "missing order token", http.StatusUnauthorized)
		return
	}
	claims, err := h.OrderTokens.Authorize(token, auth.RoleOrder)
	if err != nil {
		http.Error(w, "invalid order token", http.StatusUnauthorized)
		return
	}
	if claims.Subject != orderID {
		http.Error(w, "token does not match order", http.StatusForbidden)
		return
	}

	qrCode, err := h.Orders.GetQRCode(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
