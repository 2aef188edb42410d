package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  float64
	}{
		{name: "empty", lines: nil, want: 0},
		{name: "single", lines: []Line{{Price: 10000, Quantity: 1}}, want: 10000},
		{name: "fractional quantity", lines: []Line{{Price: 8990, Quantity: 0.1}, {Price: 8990, Quantity: 0.2}}, want: 2697},
		{name: "mixed", lines: []Line{{Price: 10000, Quantity: 1}, {Price: 5000, Quantity: 2}}, want: 20000},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Subtotal(testCase.lines))
		})
	}
}

func TestSubtotal_OrderIndependent(t *testing.T) {
	lines := []Line{{Price: 1290, Quantity: 0.3}, {Price: 15990, Quantity: 1.7}, {Price: 4500, Quantity: 2}}
	reversed := []Line{lines[2], lines[1], lines[0]}
	assert.Equal(t, Subtotal(lines), Subtotal(reversed))
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		coupon   *Coupon
		want     float64
	}{
		{name: "no coupon", subtotal: 20000, coupon: nil, want: 0},
		{name: "ten percent", subtotal: 20000, coupon: &Coupon{Type: CouponPercentage, Value: 10}, want: 2000},
		{name: "percentage rounds half up", subtotal: 12345, coupon: &Coupon{Type: CouponPercentage, Value: 10}, want: 1235},
		{name: "fixed", subtotal: 20000, coupon: &Coupon{Type: CouponFixed, Value: 5000}, want: 5000},
		{name: "hundred percent of fractional subtotal", subtotal: 0.5, coupon: &Coupon{Type: CouponPercentage, Value: 100}, want: 0.5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Discount(testCase.subtotal, testCase.coupon))
		})
	}
}

func TestDiscount_PercentageNeverExceedsSubtotal(t *testing.T) {
	for _, subtotal := range []float64{0, 0.4, 1, 999, 12345.6, 20000} {
		for v := 0.0; v <= 100; v += 12.5 {
			d := Discount(subtotal, &Coupon{Type: CouponPercentage, Value: v})
			assert.LessOrEqual(t, d, subtotal, "subtotal=%v value=%v", subtotal, v)
		}
	}
}

func TestDeliveryPolicy_Resolve(t *testing.T) {
	policy := DeliveryPolicy{
		FlatCost:          3000,
		AvailableCommunes: []string{"Providencia", "Santiago", "Maipú", "Macul"},
		DefaultEstimate:   "24-48 horas",
		Zones: []Zone{
			{Name: "Providencia", Price: 2000, EstimatedTime: "30-45 min", Active: true},
			{Name: "Santiago", Price: 1500, EstimatedTime: "25-40 min", Active: true, Free: true},
			{Name: "Maipú", Price: 4000, Active: false},
		},
	}

	tests := []struct {
		name    string
		commune string
		want    Delivery
	}{
		{name: "empty commune", commune: "", want: Delivery{Fee: 0, EstimatedTime: "24-48 horas"}},
		{name: "zone price", commune: "Providencia", want: Delivery{Commune: "Providencia", Fee: 2000, Available: true, EstimatedTime: "30-45 min"}},
		{name: "case variant matches the same zone", commune: "  providencia ", want: Delivery{Commune: "Providencia", Fee: 2000, Available: true, EstimatedTime: "30-45 min"}},
		{name: "upper case matches the same zone", commune: "PROVIDENCIA", want: Delivery{Commune: "Providencia", Fee: 2000, Available: true, EstimatedTime: "30-45 min"}},
		{name: "free zone override", commune: "Santiago", want: Delivery{Commune: "Santiago", Fee: 0, Available: true, EstimatedTime: "25-40 min"}},
		{name: "inactive zone uses flat cost", commune: "Maipú", want: Delivery{Commune: "Maipú", Fee: 3000, Available: true, EstimatedTime: "24-48 horas"}},
		{name: "no zone uses flat cost", commune: "macul", want: Delivery{Commune: "Macul", Fee: 3000, Available: true, EstimatedTime: "24-48 horas"}},
		{name: "outside allowlist falls back to flat cost", commune: "La Pintana", want: Delivery{Commune: "La Pintana", Fee: 3000, Available: false, EstimatedTime: "24-48 horas"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, policy.Resolve(testCase.commune))
		})
	}
}

func TestDeliveryPolicy_EmptyAllowlistAcceptsAnyCommune(t *testing.T) {
	policy := DeliveryPolicy{FlatCost: 3000, Zones: []Zone{{Name: "Ñuñoa", Price: 2000, Active: true}}}

	assert.Equal(t, 2000.0, policy.Resolve("Ñuñoa").Fee)
	assert.Equal(t, 2000.0, policy.Resolve("ñuñoa").Fee)
	assert.Equal(t, "Ñuñoa", policy.Resolve("ñuñoa").Commune)
	assert.True(t, policy.Resolve("Renca").Available)
	assert.Equal(t, 3000.0, policy.Resolve("Renca").Fee)
}

func TestCompute_EndToEnd(t *testing.T) {
	lines := []Line{{Price: 10000, Quantity: 1.0}, {Price: 5000, Quantity: 2.0}}
	coupon := &Coupon{Code: "NUEVO10", Type: CouponPercentage, Value: 10}
	policy := DeliveryPolicy{FlatCost: 5000, Zones: []Zone{{Name: "Recoleta", Price: 3000, Active: true}}}

	accepted := Compute(lines, coupon, "Recoleta", policy, 20000)
	assert.Equal(t, 20000.0, accepted.Subtotal)
	assert.Equal(t, 2000.0, accepted.Discount)
	assert.Equal(t, 3000.0, accepted.Delivery.Fee)
	assert.Equal(t, 21000.0, accepted.Total)
	assert.True(t, accepted.MeetsMinimum)
	assert.Equal(t, "NUEVO10", accepted.CouponCode)

	rejected := Compute(lines, coupon, "Recoleta", policy, 25000)
	assert.Equal(t, 21000.0, rejected.Total)
	assert.False(t, rejected.MeetsMinimum)
}

func TestMeetsMinimum(t *testing.T) {
	assert.True(t, MeetsMinimum(20000, 20000))
	assert.True(t, MeetsMinimum(20000.01, 20000))
	assert.False(t, MeetsMinimum(19999.99, 20000))
}
