package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("coupon not found")
	ErrDuplicateCode = errors.New("a coupon with this code already exists")
	ErrValidation    = errors.New("validation failed")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

type Coupon struct {
	ID                int          `json:"id"`
	Code              string       `json:"code"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Type              DiscountType `json:"type"`
	Value             float64      `json:"value"`
	MinOrderAmount    float64      `json:"min_order_amount"`
	MaxDiscountAmount *float64     `json:"max_discount_amount,omitempty"`
	UsageLimit        *int         `json:"usage_limit,omitempty"`
	UsedCount         int          `json:"used_count"`
	StartDate         *time.Time   `json:"start_date,omitempty"`
	EndDate           *time.Time   `json:"end_date,omitempty"`
	IsActive          bool         `json:"is_active"`
	CreatedAt         time.Time    `json:"created_at"`
}

// Usage is one redemption of a coupon by an order.
type Usage struct {
	CouponID       int       `json:"coupon_id"`
	Code           string    `json:"code"`
	OrderID        string    `json:"order_id"`
	CustomerID     *int      `json:"customer_id,omitempty"`
	DiscountAmount float64   `json:"discount_amount"`
	UsedAt         time.Time `json:"used_at"`
}

type ValidationResult struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount"`
	CouponID       int     `json:"coupon_id,omitempty"`
	Message        string  `json:"message,omitempty"`
}

const EventCouponUsed = "coupon_used"

type CouponEvent struct {
	Type           string    `json:"type"`
	CouponID       int       `json:"coupon_id"`
	Code           string    `json:"code"`
	OrderID        string    `json:"order_id"`
	DiscountAmount float64   `json:"discount_amount"`
	Timestamp      time.Time `json:"timestamp"`
}
