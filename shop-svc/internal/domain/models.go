package domain

import (
	"strings"
	"time"
)

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Order       int       `json:"order"`
	IsVisible   bool      `json:"is_visible"`
	CreatedAt   time.Time `json:"created_at"`
}

type UnitType string

const (
	UnitKg      UnitType = "kg"
	UnitUnidad  UnitType = "unidad"
	UnitPaquete UnitType = "paquete"
)

func (u UnitType) Valid() bool {
	switch u {
	case UnitKg, UnitUnidad, UnitPaquete:
		return true
	}
	return false
}

type Product struct {
	ID           int       `json:"id"`
	CategoryID   int       `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Image        string    `json:"image"`
	Stock        float64   `json:"stock"`
	UnitType     UnitType  `json:"unit_type"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
}

type DailyOffer struct {
	ID                 int       `json:"id"`
	ProductID          int       `json:"product_id"`
	DiscountPercentage float64   `json:"discount_percentage"`
	OriginalPrice      float64   `json:"original_price"`
	DiscountedPrice    float64   `json:"discounted_price"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	Product            *Product  `json:"product,omitempty"`
}

// OfferProduct is a daily offer shaped as a storefront product card.
type OfferProduct struct {
	ID                 int     `json:"id"`
	OfferID            int     `json:"offer_id"`
	CategoryID         int     `json:"category_id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Image              string  `json:"image"`
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"original_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
	Stock              float64 `json:"stock"`
}

type Customer struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Commune     string     `json:"commune"`
	TotalOrders int        `json:"total_orders"`
	TotalSpent  float64    `json:"total_spent"`
	LastOrder   *time.Time `json:"last_order,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                string      `json:"id"`
	CustomerID        *int        `json:"customer_id,omitempty"`
	CustomerName      string      `json:"customer_name"`
	CustomerEmail     string      `json:"customer_email,omitempty"`
	CustomerPhone     string      `json:"customer_phone"`
	Address           string      `json:"address"`
	Commune           string      `json:"commune"`
	Status            OrderStatus `json:"status"`
	Total             float64     `json:"total"`
	OriginalTotal     float64     `json:"original_total"`
	Discount          float64     `json:"discount"`
	DeliveryFee       float64     `json:"delivery_fee"`
	CouponCode        string      `json:"coupon_code,omitempty"`
	EstimatedDelivery string      `json:"estimated_delivery"`
	CreatedAt         time.Time   `json:"created_at"`
	Items             []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

type DeliveryZone struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	DeliveryPrice float64 `json:"delivery_price"`
	EstimatedTime string  `json:"estimated_time"`
	IsActive      bool    `json:"is_active"`
	FreeDelivery  bool    `json:"free_delivery"`
}

type StoreLocation struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Commune     string    `json:"commune"`
	Phone       string    `json:"phone"`
	Hours       string    `json:"hours"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConfigEntry struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdminUser struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

const (
	EventOrderCreated = "order_created"
)

// OrderEvent is published after an order is stored.
type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     string      `json:"order_id"`
	CustomerID  *int        `json:"customer_id,omitempty"`
	Total       float64     `json:"total"`
	Discount    float64     `json:"discount"`
	NewCustomer bool        `json:"new_customer"`
	Items       []OrderItem `json:"items"`
	Timestamp   time.Time   `json:"timestamp"`
}

// ClientCode is the first three letters of the name (spaces removed, upper-cased)
// followed by the last four characters of the phone.
func ClientCode(name, phone string) string {
	compact := []rune(strings.ToUpper(strings.Join(strings.Fields(name), "")))
	if len(compact) > 3 {
		compact = compact[:3]
	}
	tail := []rune(phone)
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return string(compact) + string(tail)
}
