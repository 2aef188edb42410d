package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"alianza-shop/coupon-svc/internal/domain"
	"alianza-shop/coupon-svc/internal/mocks"
	"alianza-shop/coupon-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func activeCoupon(mutate func(c *domain.Coupon)) *domain.Coupon {
	c := &domain.Coupon{
		ID:       7,
		Code:     "AHORRA",
		Name:     "Ahorra",
		Type:     domain.DiscountFixed,
		Value:    2000,
		IsActive: true,
	}
	if mutate != nil {
		mutate(c)
	}
	return c
}

func TestCouponService_Validate(t *testing.T) {
	tests := []struct {
		name          string
		orderTotal    float64
		coupon        *domain.Coupon
		repoErr       error
		expectedValid bool
		expectedMsg   string
		expectedDisc  float64
		expectedError bool
	}{
		{
			name:        "unknown_code",
			orderTotal:  20000,
			repoErr:     domain.ErrNotFound,
			expectedMsg: service.MsgUnknown,
		},
		{
			name:          "repository_failure",
			orderTotal:    20000,
			repoErr:       errors.New("connection reset"),
			expectedError: true,
		},
		{
			name:       "inactive_checked_before_dates",
			orderTotal: 20000,
			coupon: activeCoupon(func(c *domain.Coupon) {
				c.IsActive = false
				c.EndDate = timePtr(fixedNow.Add(-time.Hour))
			}),
			expectedMsg: service.MsgInactive,
		},
		{
			name:        "not_started",
			orderTotal:  20000,
			coupon:      activeCoupon(func(c *domain.Coupon) { c.StartDate = timePtr(fixedNow.Add(24 * time.Hour)) }),
			expectedMsg: service.MsgNotStarted,
		},
		{
			name:        "expired",
			orderTotal:  20000,
			coupon:      activeCoupon(func(c *domain.Coupon) { c.EndDate = timePtr(fixedNow.Add(-time.Hour)) }),
			expectedMsg: service.MsgExpired,
		},
		{
			name:       "usage_limit_reached",
			orderTotal: 20000,
			coupon: activeCoupon(func(c *domain.Coupon) {
				c.UsageLimit = intPtr(10)
				c.UsedCount = 10
			}),
			expectedMsg: service.MsgLimitReached,
		},
		{
			name:        "below_minimum",
			orderTotal:  20000,
			coupon:      activeCoupon(func(c *domain.Coupon) { c.MinOrderAmount = 30000 }),
			expectedMsg: "El pedido mínimo para este cupón es $30000",
		},
		{
			name:       "fixed_amount",
			orderTotal: 20000,
			coupon: activeCoupon(func(c *domain.Coupon) {
				c.StartDate = timePtr(fixedNow.Add(-time.Hour))
				c.EndDate = timePtr(fixedNow.Add(time.Hour))
			}),
			expectedValid: true,
			expectedDisc:  2000,
		},
		{
			name:       "percentage_rounded_to_whole_pesos",
			orderTotal: 33333,
			coupon: activeCoupon(func(c *domain.Coupon) {
				c.Type = domain.DiscountPercentage
				c.Value = 15
			}),
			expectedValid: true,
			expectedDisc:  5000,
		},
		{
			name:       "percentage_capped_by_maximum",
			orderTotal: 100000,
			coupon: activeCoupon(func(c *domain.Coupon) {
				c.Type = domain.DiscountPercentage
				c.Value = 20
				c.MaxDiscountAmount = floatPtr(8000)
			}),
			expectedValid: true,
			expectedDisc:  8000,
		},
		{
			name:          "fixed_amount_capped_by_total",
			orderTotal:    1500,
			coupon:        activeCoupon(nil),
			expectedValid: true,
			expectedDisc:  1500,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewCouponRepository(t)
			svc := service.NewCouponService(repository, mocks.NewUsageCache(t), nil, nil).
				WithClock(func() time.Time { return fixedNow })

			repository.On("GetCouponByCode", "AHORRA").Return(testCase.coupon, testCase.repoErr).Once()

			result, err := svc.Validate(" ahorra ", testCase.orderTotal)

			if testCase.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedValid, result.Valid)
			assert.Equal(t, testCase.expectedMsg, result.Message)
			assert.Equal(t, testCase.expectedDisc, result.DiscountAmount)
			if testCase.expectedValid {
				assert.Equal(t, 7, result.CouponID)
			}
		})
	}
}

func TestCouponService_Create(t *testing.T) {
	repository := mocks.NewCouponRepository(t)
	svc := service.NewCouponService(repository, mocks.NewUsageCache(t), nil, nil)

	tests := []struct {
		name          string
		coupon        *domain.Coupon
		prepareMocks  func()
		expectedCode  string
		expectedError error
	}{
		{
			name:   "normalizes_code",
			coupon: &domain.Coupon{Code: " verano10 ", Name: "Verano", Type: domain.DiscountPercentage, Value: 10},
			prepareMocks: func() {
				repository.On("CreateCoupon", mock.MatchedBy(func(c *domain.Coupon) bool { return c.Code == "VERANO10" })).
					Return(nil).Once()
			},
			expectedCode: "VERANO10",
		},
		{
			name:          "missing_name",
			coupon:        &domain.Coupon{Code: "X", Type: domain.DiscountFixed, Value: 1000},
			prepareMocks:  func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "unknown_type",
			coupon:        &domain.Coupon{Code: "X", Name: "X", Type: "bogo", Value: 1000},
			prepareMocks:  func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "percentage_over_100",
			coupon:        &domain.Coupon{Code: "X", Name: "X", Type: domain.DiscountPercentage, Value: 120},
			prepareMocks:  func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name: "end_before_start",
			coupon: &domain.Coupon{
				Code: "X", Name: "X", Type: domain.DiscountFixed, Value: 1000,
				StartDate: timePtr(fixedNow), EndDate: timePtr(fixedNow.Add(-time.Hour)),
			},
			prepareMocks:  func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "duplicate_code",
			coupon: &domain.Coupon{Code: "AHORRA", Name: "Ahorra", Type: domain.DiscountFixed, Value: 2000},
			prepareMocks: func() {
				repository.On("CreateCoupon", mock.Anything).Return(domain.ErrDuplicateCode).Once()
			},
			expectedError: domain.ErrDuplicateCode,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()

			err := svc.Create(testCase.coupon)

			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedCode, testCase.coupon.Code)
		})
	}
}

func TestCouponService_DeleteAndStatusNotFound(t *testing.T) {
	repository := mocks.NewCouponRepository(t)
	svc := service.NewCouponService(repository, mocks.NewUsageCache(t), nil, nil)

	repository.On("DeleteCoupon", 9).Return(int64(0), nil).Once()
	repository.On("SetCouponActive", 9, false).Return(int64(0), nil).Once()
	repository.On("SetCouponActive", 7, true).Return(int64(1), nil).Once()

	assert.ErrorIs(t, svc.Delete(9), domain.ErrNotFound)
	assert.ErrorIs(t, svc.SetActive(9, false), domain.ErrNotFound)
	assert.NoError(t, svc.SetActive(7, true))
}

func TestCouponService_Use(t *testing.T) {
	ctx := context.Background()
	const key = "coupon:used:AHORRA:KT-1"

	tests := []struct {
		name             string
		usage            *domain.Usage
		prepareMocks     func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher)
		expectedRecorded bool
		expectedError    bool
	}{
		{
			name:  "records_and_publishes",
			usage: &domain.Usage{Code: "ahorra", OrderID: "KT-1", DiscountAmount: 2000},
			prepareMocks: func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher) {
				cache.On("UsageMarkerKey", "AHORRA", "KT-1").Return(key).Once()
				cache.On("MarkUsed", ctx, key).Return(true, nil).Once()
				repository.On("RecordUsage", mock.Anything).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Usage).CouponID = 7
				}).Return(true, nil).Once()
				publisher.On("PublishUsage", ctx, mock.MatchedBy(func(e domain.CouponEvent) bool {
					return e.Type == domain.EventCouponUsed && e.CouponID == 7 && e.DiscountAmount == 2000
				})).Return(nil).Once()
			},
			expectedRecorded: true,
		},
		{
			name:  "repeated_report_is_noop",
			usage: &domain.Usage{Code: "AHORRA", OrderID: "KT-1", DiscountAmount: 2000},
			prepareMocks: func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher) {
				cache.On("UsageMarkerKey", "AHORRA", "KT-1").Return(key).Once()
				cache.On("MarkUsed", ctx, key).Return(false, nil).Once()
			},
			expectedRecorded: false,
		},
		{
			name:  "marker_unavailable_falls_back_to_database",
			usage: &domain.Usage{Code: "AHORRA", OrderID: "KT-1", DiscountAmount: 2000},
			prepareMocks: func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher) {
				cache.On("UsageMarkerKey", "AHORRA", "KT-1").Return(key).Once()
				cache.On("MarkUsed", ctx, key).Return(false, errors.New("redis down")).Once()
				repository.On("RecordUsage", mock.Anything).Return(false, nil).Once()
			},
			expectedRecorded: false,
		},
		{
			name:  "database_failure_clears_marker",
			usage: &domain.Usage{Code: "AHORRA", OrderID: "KT-1", DiscountAmount: 2000},
			prepareMocks: func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher) {
				cache.On("UsageMarkerKey", "AHORRA", "KT-1").Return(key).Once()
				cache.On("MarkUsed", ctx, key).Return(true, nil).Once()
				repository.On("RecordUsage", mock.Anything).Return(false, errors.New("deadlock")).Once()
				cache.On("Unmark", ctx, key).Return(nil).Once()
			},
			expectedError: true,
		},
		{
			name:  "publish_failure_is_swallowed",
			usage: &domain.Usage{Code: "AHORRA", OrderID: "KT-1", DiscountAmount: 2000},
			prepareMocks: func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher) {
				cache.On("UsageMarkerKey", "AHORRA", "KT-1").Return(key).Once()
				cache.On("MarkUsed", ctx, key).Return(true, nil).Once()
				repository.On("RecordUsage", mock.Anything).Return(true, nil).Once()
				publisher.On("PublishUsage", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
			expectedRecorded: true,
		},
		{
			name:          "missing_order_id",
			usage:         &domain.Usage{Code: "AHORRA", DiscountAmount: 2000},
			prepareMocks:  func(repository *mocks.CouponRepository, cache *mocks.UsageCache, publisher *mocks.EventPublisher) {},
			expectedError: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewCouponRepository(t)
			cache := mocks.NewUsageCache(t)
			publisher := mocks.NewEventPublisher(t)
			svc := service.NewCouponService(repository, cache, publisher, nil)

			testCase.prepareMocks(repository, cache, publisher)

			recorded, err := svc.Use(ctx, testCase.usage)

			if testCase.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expectedRecorded, recorded)
		})
	}
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		coupon   domain.Coupon
		total    float64
		expected float64
	}{
		{name: "percentage", coupon: domain.Coupon{Type: domain.DiscountPercentage, Value: 10}, total: 25990, expected: 2599},
		{name: "percentage_half_rounds_up", coupon: domain.Coupon{Type: domain.DiscountPercentage, Value: 50}, total: 25, expected: 13},
		{name: "fixed", coupon: domain.Coupon{Type: domain.DiscountFixed, Value: 3000}, total: 25000, expected: 3000},
		{name: "never_above_total", coupon: domain.Coupon{Type: domain.DiscountPercentage, Value: 100}, total: 8000, expected: 8000},
		{name: "max_cap", coupon: domain.Coupon{Type: domain.DiscountFixed, Value: 3000, MaxDiscountAmount: floatPtr(2500)}, total: 25000, expected: 2500},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, service.Discount(&testCase.coupon, testCase.total))
		})
	}
}
