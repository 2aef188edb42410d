// Package checkout prices a session's cart and turns it into an order.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"alianza-shop/auth"
	"alianza-shop/shop-svc/internal/cart"
	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/pricing"
	"alianza-shop/shop-svc/internal/settings"
	"alianza-shop/shop-svc/internal/whatsapp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrBelowMinimumOrder = errors.New("order total is below the minimum order")
	ErrCouponRequired    = errors.New("coupon code is required")
)

// TokenSigner signs role-scoped tokens. *auth.Issuer satisfies it.
type TokenSigner interface {
	IssueFor(role, subject string, ttl time.Duration) (string, time.Time, error)
}

type CartStore interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type SettingsSource interface {
	Get(ctx context.Context) settings.StoreSettings
}

type ZoneLister interface {
	ListZones(activeOnly bool) ([]domain.DeliveryZone, error)
}

type CustomerStore interface {
	GetCustomerByPhone(phone string) (*domain.Customer, error)
	CreateCustomer(c *domain.Customer) error
	UpdateCustomer(c *domain.Customer) error
}

type OrderStore interface {
	CreateOrder(order *domain.Order) error
}

type CouponClient interface {
	Validate(ctx context.Context, code string, orderTotal float64) (*CouponResult, error)
	Use(ctx context.Context, usage CouponUsage) error
}

type EventPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type CouponResult struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount"`
	CouponID       int     `json:"coupon_id,omitempty"`
	Message        string  `json:"message,omitempty"`
}

type CouponUsage struct {
	Code           string  `json:"code"`
	OrderID        string  `json:"order_id"`
	CustomerID     *int    `json:"customer_id,omitempty"`
	DiscountAmount float64 `json:"discount_amount"`
}

// ValidationError carries one message per form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, ". ")
}

func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

type BelowMinimumError struct {
	Total   float64
	Minimum float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("%s: total %s, minimum %s", ErrBelowMinimumOrder.Error(),
		whatsapp.FormatCLP(e.Total), whatsapp.FormatCLP(e.Minimum))
}

func (e *BelowMinimumError) Is(target error) bool {
	return target == ErrBelowMinimumOrder
}

type Form struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Commune    string `json:"commune"`
	CouponCode string `json:"coupon_code"`
}

func (f Form) validate(c *cart.Cart) error {
	fields := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "El nombre es requerido"
	}
	if strings.TrimSpace(f.Phone) == "" {
		fields["phone"] = "El teléfono es requerido"
	}
	if strings.TrimSpace(f.Address) == "" {
		fields["address"] = "La dirección es requerida"
	}
	if strings.TrimSpace(f.Commune) == "" {
		fields["commune"] = "Debes seleccionar una comuna"
	}
	if c.IsEmpty() {
		fields["cart"] = "Tu carrito está vacío"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type Quote struct {
	Items             []cart.Item `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Discount          float64     `json:"discount"`
	DeliveryFee       float64     `json:"delivery_fee"`
	Commune           string      `json:"commune,omitempty"`
	DeliveryAvailable bool        `json:"delivery_available"`
	EstimatedDelivery string      `json:"estimated_delivery"`
	Total             float64     `json:"total"`
	MinimumOrder      float64     `json:"minimum_order"`
	MeetsMinimum      bool        `json:"meets_minimum"`
	CouponCode        string      `json:"coupon_code,omitempty"`
	CouponID          int         `json:"coupon_id,omitempty"`
	CouponMessage     string      `json:"coupon_message,omitempty"`
}

type Confirmation struct {
	OrderID             string      `json:"order_id"`
	ClientCode          string      `json:"client_code"`
	Name                string      `json:"name"`
	Email               string      `json:"email,omitempty"`
	Phone               string      `json:"phone"`
	Address             string      `json:"address"`
	Commune             string      `json:"commune"`
	Items               []cart.Item `json:"items"`
	Subtotal            float64     `json:"subtotal"`
	Discount            float64     `json:"discount"`
	DeliveryFee         float64     `json:"delivery_fee"`
	Total               float64     `json:"total"`
	CouponCode          string      `json:"coupon_code,omitempty"`
	EstimatedDelivery   string      `json:"estimated_delivery"`
	OrderDate           string      `json:"order_date"`
	OrderTime           string      `json:"order_time"`
	ConfirmationMessage string      `json:"confirmation_message"`
	WhatsAppLink        string      `json:"whatsapp_link"`
	QRCodeURL           string      `json:"qr_code_url"`
}

type Deps struct {
	Carts     CartStore
	Settings  SettingsSource
	Zones     ZoneLister
	Customers CustomerStore
	Orders    OrderStore
	Coupons   CouponClient
	Events    EventPublisher
	Tokens    TokenSigner
	Logger    *zap.Logger
	Now       func() time.Time
	NewID     func(time.Time) string
}

type Service struct {
	carts     CartStore
	settings  SettingsSource
	zones     ZoneLister
	customers CustomerStore
	orders    OrderStore
	coupons   CouponClient
	events    EventPublisher
	tokens    TokenSigner
	logger    *zap.Logger
	now       func() time.Time
	newID     func(time.Time) string
}

func NewService(d Deps) *Service {
	s := &Service{
		carts:     d.Carts,
		settings:  d.Settings,
		zones:     d.Zones,
		customers: d.Customers,
		orders:    d.Orders,
		coupons:   d.Coupons,
		events:    d.Events,
		tokens:    d.Tokens,
		logger:    d.Logger,
		now:       d.Now,
		newID:     d.NewID,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = NewOrderID
	}
	return s
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID returns KT-YYYYMMDD-HHMM-XXXX with a random base-36 suffix.
func NewOrderID(now time.Time) string {
	random := uuid.New()
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36[int(random[i])%len(base36)]
	}
	return fmt.Sprintf("KT-%s-%s-%s", now.Format("20060102"), now.Format("1504"), suffix)
}

func (s *Service) Cart(ctx context.Context, sessionID string) (*cart.Cart, error) {
	return s.carts.Load(ctx, sessionID)
}

// Quote prices the session's cart for a commune and an optional coupon code.
func (s *Service) Quote(ctx context.Context, sessionID, commune, couponCode string) (*Quote, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	q, _, err := s.price(ctx, c, commune, couponCode)
	return q, err
}

// ApplyCoupon asks the coupon service whether code applies to subtotal.
func (s *Service) ApplyCoupon(ctx context.Context, code string, subtotal float64) (*CouponResult, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, ErrCouponRequired
	}
	result, err := s.coupons.Validate(ctx, code, subtotal)
	if err != nil {
		s.logger.Error("coupon validation failed", zap.String("code", code), zap.Error(err))
		return nil, fmt.Errorf("validate coupon: %w", err)
	}
	return result, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *Service) price(ctx context.Context, c *cart.Cart, commune, couponCode string) (*Quote, *pricing.Coupon, error) {
	cfg := s.settings.Get(ctx)

	zones, err := s.zones.ListZones(true)
	if err != nil {
		s.logger.Warn("failed to load delivery zones, using flat shipping cost", zap.Error(err))
		zones = nil
	}

	q := &Quote{Items: c.Items}
	var coupon *pricing.Coupon
	if code := normalizeCode(couponCode); code != "" && !c.IsEmpty() {
		result, err := s.ApplyCoupon(ctx, code, c.Total())
		if err != nil {
			return nil, nil, err
		}
		if result.Valid {
			coupon = &pricing.Coupon{ID: result.CouponID, Code: code, Type: pricing.CouponFixed, Value: result.DiscountAmount}
			q.CouponID = result.CouponID
		} else {
			q.CouponMessage = result.Message
		}
	}

	computed := pricing.Compute(c.Lines(), coupon, commune, cfg.DeliveryPolicy(zones), cfg.MinimumOrder)
	q.Subtotal = computed.Subtotal
	q.Discount = computed.Discount
	q.DeliveryFee = computed.Delivery.Fee
	q.Commune = computed.Delivery.Commune
	q.DeliveryAvailable = computed.Delivery.Available
	q.EstimatedDelivery = computed.Delivery.EstimatedTime
	q.Total = computed.Total
	q.MinimumOrder = computed.Minimum
	q.MeetsMinimum = computed.MeetsMinimum
	q.CouponCode = computed.CouponCode
	return q, coupon, nil
}

// Submit validates the form, stores the order and clears the cart. The cart is
// left untouched on every error path.
func (s *Service) Submit(ctx context.Context, sessionID string, form Form) (*Confirmation, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := form.validate(c); err != nil {
		return nil, err
	}

	q, coupon, err := s.price(ctx, c, form.Commune, form.CouponCode)
	if err != nil {
		return nil, err
	}
	if normalizeCode(form.CouponCode) != "" && coupon == nil {
		msg := q.CouponMessage
		if msg == "" {
			msg = "Cupón no válido"
		}
		return nil, &ValidationError{Fields: map[string]string{"coupon_code": msg}}
	}
	if !q.MeetsMinimum {
		return nil, &BelowMinimumError{Total: q.Total, Minimum: q.MinimumOrder}
	}
	if q.Commune != "" {
		form.Commune = q.Commune
	}

	now := s.now()
	orderID := s.newID(now)
	customerID, newCustomer := s.upsertCustomer(form)

	order := &domain.Order{
		ID:                orderID,
		CustomerID:        customerID,
		CustomerName:      strings.TrimSpace(form.Name),
		CustomerEmail:     strings.TrimSpace(form.Email),
		CustomerPhone:     strings.TrimSpace(form.Phone),
		Address:           strings.TrimSpace(form.Address),
		Commune:           strings.TrimSpace(form.Commune),
		Status:            domain.StatusPending,
		Total:             q.Total,
		OriginalTotal:     q.Subtotal,
		Discount:          q.Discount,
		DeliveryFee:       q.DeliveryFee,
		CouponCode:        q.CouponCode,
		EstimatedDelivery: q.EstimatedDelivery,
		Items:             c.OrderItems(),
	}
	if err := s.orders.CreateOrder(order); err != nil {
		s.logger.Error("failed to create order", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("create order: %w", err)
	}

	if coupon != nil {
		usage := CouponUsage{Code: coupon.Code, OrderID: orderID, CustomerID: customerID, DiscountAmount: q.Discount}
		if err := s.coupons.Use(ctx, usage); err != nil {
			s.logger.Warn("failed to register coupon usage", zap.String("code", coupon.Code), zap.String("order_id", orderID), zap.Error(err))
		}
	}

	if s.events != nil {
		event := domain.OrderEvent{
			Type:        domain.EventOrderCreated,
			OrderID:     orderID,
			CustomerID:  customerID,
			Total:       q.Total,
			Discount:    q.Discount,
			NewCustomer: newCustomer,
			Items:       order.Items,
			Timestamp:   now,
		}
		if err := s.events.PublishOrder(ctx, event); err != nil {
			s.logger.Warn("failed to publish order event", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("failed to clear cart", zap.String("session", sessionID), zap.Error(err))
	}

	cfg := s.settings.Get(ctx)
	clientCode := domain.ClientCode(order.CustomerName, order.CustomerPhone)
	link := whatsapp.Link(cfg.WhatsAppNumber, whatsapp.OrderMessage(whatsapp.OrderSummary{
		OrderID:           orderID,
		CustomerName:      order.CustomerName,
		ClientCode:        clientCode,
		Total:             q.Total,
		Address:           order.Address,
		Commune:           order.Commune,
		EstimatedDelivery: q.EstimatedDelivery,
	}))

	return &Confirmation{
		OrderID:             orderID,
		ClientCode:          clientCode,
		Name:                order.CustomerName,
		Email:               order.CustomerEmail,
		Phone:               order.CustomerPhone,
		Address:             order.Address,
		Commune:             order.Commune,
		Items:               c.Items,
		Subtotal:            q.Subtotal,
		Discount:            q.Discount,
		DeliveryFee:         q.DeliveryFee,
		Total:               q.Total,
		CouponCode:          q.CouponCode,
		EstimatedDelivery:   q.EstimatedDelivery,
		OrderDate:           now.Format("02-01-2006"),
		OrderTime:           now.Format("15:04"),
		ConfirmationMessage: cfg.ConfirmationMessage,
		WhatsAppLink:        link,
		QRCodeURL:           s.qrCodeURL(orderID),
	}, nil
}

// OrderTokenTTL bounds how long a confirmation link can fetch its QR code.
const OrderTokenTTL = 90 * 24 * time.Hour

// qrCodeURL links to the order's QR code with a token scoped to that order.
func (s *Service) qrCodeURL(orderID string) string {
	path := "/api/orders/" + orderID + "/qrcode"
	if s.tokens == nil {
		return path
	}
	token, _, err := s.tokens.IssueFor(auth.RoleOrder, orderID, OrderTokenTTL)
	if err != nil {
		s.logger.Warn("failed to sign order token", zap.String("order_id", orderID), zap.Error(err))
		return path
	}
	return path + "?token=" + url.QueryEscape(token)
}

// upsertCustomer is keyed on phone. Failures are logged and the order goes on
// without a customer reference.
func (s *Service) upsertCustomer(form Form) (*int, bool) {
	phone := strings.TrimSpace(form.Phone)
	existing, err := s.customers.GetCustomerByPhone(phone)
	switch {
	case err == nil:
		existing.Name = strings.TrimSpace(form.Name)
		existing.Email = strings.TrimSpace(form.Email)
		existing.Address = strings.TrimSpace(form.Address)
		existing.Commune = strings.TrimSpace(form.Commune)
		if err := s.customers.UpdateCustomer(existing); err != nil {
			s.logger.Warn("failed to update customer", zap.Int("customer_id", existing.ID), zap.Error(err))
		}
		id := existing.ID
		return &id, false
	case errors.Is(err, domain.ErrNotFound):
		created := &domain.Customer{
			Name:    strings.TrimSpace(form.Name),
			Email:   strings.TrimSpace(form.Email),
			Phone:   phone,
			Address: strings.TrimSpace(form.Address),
			Commune: strings.TrimSpace(form.Commune),
		}
		if err := s.customers.CreateCustomer(created); err != nil {
			s.logger.Warn("failed to create customer", zap.String("phone", phone), zap.Error(err))
			return nil, false
		}
		id := created.ID
		return &id, true
	default:
		s.logger.Warn("failed to look up customer", zap.String("phone", phone), zap.Error(err))
		return nil, false
	}
}

// Cart mutations. Each one loads, applies and stores the session's cart.

func (s *Service) AddItem(ctx context.Context, sessionID string, product *domain.Product, quantity float64) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.Add(cart.SnapshotOf(product), quantity)
	})
}

func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int, quantity float64) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		return c.SetQuantity(productID, quantity)
	})
}

func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int) (*cart.Cart, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) error {
		c.Remove(productID)
		return nil
	})
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.carts.Delete(ctx, sessionID)
}

func (s *Service) mutate(ctx context.Context, sessionID string, apply func(*cart.Cart) error) (*cart.Cart, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := apply(c); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return c, nil
}

// CartSummary is the cart plus its derived count and total.
type CartSummary struct {
	SessionID string      `json:"session_id"`
	Items     []cart.Item `json:"items"`
	Count     int         `json:"count"`
	Total     float64     `json:"total"`
}

func Summarize(c *cart.Cart) CartSummary {
	return CartSummary{
		SessionID: c.SessionID,
		Items:     c.Items,
		Count:     c.Count(),
		Total:     decimal.NewFromFloat(c.Total()).Round(2).InexactFloat64(),
	}
}
