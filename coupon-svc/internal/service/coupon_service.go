package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alianza-shop/coupon-svc/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	MsgUnknown      = "Cupón no válido"
	MsgInactive     = "Este cupón no está activo"
	MsgNotStarted   = "Este cupón aún no está vigente"
	MsgExpired      = "Este cupón ha expirado"
	MsgLimitReached = "Este cupón alcanzó su límite de usos"
)

type CouponService struct {
	repository CouponRepository
	cache      UsageCache
	publisher  EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewCouponService(repository CouponRepository, cache UsageCache, publisher EventPublisher, logger *zap.Logger) *CouponService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CouponService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the time source used by Validate.
func (s *CouponService) WithClock(now func() time.Time) *CouponService {
	s.now = now
	return s
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

func check(c *domain.Coupon) error {
	c.Code = NormalizeCode(c.Code)
	c.Name = strings.TrimSpace(c.Name)

	switch {
	case c.Code == "":
		return invalid("code is required")
	case c.Name == "":
		return invalid("name is required")
	case !c.Type.Valid():
		return invalid("type must be percentage or fixed")
	case c.Value <= 0:
		return invalid("value must be positive")
	case c.Type == domain.DiscountPercentage && c.Value > 100:
		return invalid("percentage cannot exceed 100")
	case c.MinOrderAmount < 0:
		return invalid("min_order_amount cannot be negative")
	case c.MaxDiscountAmount != nil && *c.MaxDiscountAmount <= 0:
		return invalid("max_discount_amount must be positive")
	case c.UsageLimit != nil && *c.UsageLimit <= 0:
		return invalid("usage_limit must be positive")
	case c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate):
		return invalid("end_date must not precede start_date")
	}
	return nil
}

func (s *CouponService) List(activeOnly bool) ([]domain.Coupon, error) {
	return s.repository.ListCoupons(activeOnly)
}

func (s *CouponService) Get(id int) (*domain.Coupon, error) {
	return s.repository.GetCoupon(id)
}

func (s *CouponService) Create(c *domain.Coupon) error {
	if err := check(c); err != nil {
		return err
	}
	return s.repository.CreateCoupon(c)
}

func (s *CouponService) Update(c *domain.Coupon) error {
	if err := check(c); err != nil {
		return err
	}
	return s.repository.UpdateCoupon(c)
}

func (s *CouponService) Delete(id int) error {
	n, err := s.repository.DeleteCoupon(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CouponService) SetActive(id int, active bool) error {
	n, err := s.repository.SetCouponActive(id, active)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Discount is the amount the coupon takes off orderTotal: percentages are rounded
// to whole pesos, the result is capped by the coupon maximum and by the total.
func Discount(c *domain.Coupon, orderTotal float64) float64 {
	total := decimal.NewFromFloat(orderTotal)
	value := decimal.NewFromFloat(c.Value)

	amount := value
	if c.Type == domain.DiscountPercentage {
		amount = total.Mul(value).Div(decimal.NewFromInt(100)).Round(0)
	}
	if c.MaxDiscountAmount != nil {
		amount = decimal.Min(amount, decimal.NewFromFloat(*c.MaxDiscountAmount))
	}
	amount = decimal.Min(amount, total)
	if amount.IsNegative() {
		return 0
	}
	f, _ := amount.Float64()
	return f
}

// Validate applies the coupon rules in order and reports the first one that fails.
// Only repository failures are returned as errors.
func (s *CouponService) Validate(code string, orderTotal float64) (*domain.ValidationResult, error) {
	c, err := s.repository.GetCouponByCode(NormalizeCode(code))
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ValidationResult{Message: MsgUnknown}, nil
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	switch {
	case !c.IsActive:
		return &domain.ValidationResult{Message: MsgInactive}, nil
	case c.StartDate != nil && now.Before(*c.StartDate):
		return &domain.ValidationResult{Message: MsgNotStarted}, nil
	case c.EndDate != nil && now.After(*c.EndDate):
		return &domain.ValidationResult{Message: MsgExpired}, nil
	case c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit:
		return &domain.ValidationResult{Message: MsgLimitReached}, nil
	case orderTotal < c.MinOrderAmount:
		return &domain.ValidationResult{
			Message: fmt.Sprintf("El pedido mínimo para este cupón es $%.0f", c.MinOrderAmount),
		}, nil
	}

	return &domain.ValidationResult{
		Valid:          true,
		DiscountAmount: Discount(c, orderTotal),
		CouponID:       c.ID,
	}, nil
}

// Use records one redemption per (code, order). Repeated reports for the same
// order return false without touching the counters.
func (s *CouponService) Use(ctx context.Context, usage *domain.Usage) (bool, error) {
	usage.Code = NormalizeCode(usage.Code)
	usage.OrderID = strings.TrimSpace(usage.OrderID)
	if usage.Code == "" || usage.OrderID == "" {
		return false, invalid("code and order_id are required")
	}
	if usage.DiscountAmount < 0 {
		return false, invalid("discount_amount cannot be negative")
	}

	key := s.cache.UsageMarkerKey(usage.Code, usage.OrderID)
	fresh, err := s.cache.MarkUsed(ctx, key)
	if err != nil {
		s.logger.Warn("usage marker unavailable", zap.String("key", key), zap.Error(err))
	} else if !fresh {
		return false, nil
	}

	recorded, err := s.repository.RecordUsage(usage)
	if err != nil {
		if fresh {
			if uerr := s.cache.Unmark(ctx, key); uerr != nil {
				s.logger.Warn("failed to clear usage marker", zap.String("key", key), zap.Error(uerr))
			}
		}
		return false, err
	}
	if !recorded {
		return false, nil
	}
	usage.UsedAt = s.now()

	if s.publisher != nil {
		event := domain.CouponEvent{
			Type:           domain.EventCouponUsed,
			CouponID:       usage.CouponID,
			Code:           usage.Code,
			OrderID:        usage.OrderID,
			DiscountAmount: usage.DiscountAmount,
			Timestamp:      usage.UsedAt,
		}
		if err := s.publisher.PublishUsage(ctx, event); err != nil {
			s.logger.Warn("failed to publish coupon usage", zap.String("order_id", usage.OrderID), zap.Error(err))
		}
	}
	return true, nil
}
