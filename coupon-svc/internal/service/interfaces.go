package service

import (
	"context"

	"alianza-shop/coupon-svc/internal/domain"
)

type CouponServiceInterface interface {
	List(activeOnly bool) ([]domain.Coupon, error)
	Get(id int) (*domain.Coupon, error)
	Create(c *domain.Coupon) error
	Update(c *domain.Coupon) error
	Delete(id int) error
	SetActive(id int, active bool) error
	Validate(code string, orderTotal float64) (*domain.ValidationResult, error)
	Use(ctx context.Context, usage *domain.Usage) (bool, error)
}

type CouponRepository interface {
	ListCoupons(activeOnly bool) ([]domain.Coupon, error)
	GetCoupon(id int) (*domain.Coupon, error)
	GetCouponByCode(code string) (*domain.Coupon, error)
	CreateCoupon(c *domain.Coupon) error
	UpdateCoupon(c *domain.Coupon) error
	DeleteCoupon(id int) (int64, error)
	SetCouponActive(id int, active bool) (int64, error)
	RecordUsage(u *domain.Usage) (bool, error)
}

type UsageCache interface {
	UsageMarkerKey(code, orderID string) string
	MarkUsed(ctx context.Context, key string) (bool, error)
	Unmark(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishUsage(ctx context.Context, event domain.CouponEvent) error
}

var _ CouponServiceInterface = (*CouponService)(nil)
