package domain

import "time"

const (
	EventOrderCreated = "order_created"
	EventCouponUsed   = "coupon_used"
)

type Item struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// Event is the envelope shared by every message on the shop events topic.
// Fields not used by a given type stay zero.
type Event struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	CustomerID     *int      `json:"customer_id,omitempty"`
	Total          float64   `json:"total"`
	Discount       float64   `json:"discount"`
	NewCustomer    bool      `json:"new_customer"`
	Items          []Item    `json:"items"`
	CouponID       int       `json:"coupon_id"`
	Code           string    `json:"code"`
	DiscountAmount float64   `json:"discount_amount"`
	Timestamp      time.Time `json:"timestamp"`
}
