// Package pricing computes checkout totals: subtotal, coupon discount,
// delivery fee by commune and the minimum-order check.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Line struct {
	Price    float64
	Quantity float64
}

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

type Coupon struct {
	ID    int
	Code  string
	Type  CouponType
	Value float64
}

type Zone struct {
	Name          string
	Price         float64
	EstimatedTime string
	Active        bool
	Free          bool
}

// DeliveryPolicy resolves a commune to a fee. Precedence: allowlist miss
// falls back to the flat cost, then the active zone record (zero when free),
// then the flat cost. Communes match by NormalizeCommune at every step.
type DeliveryPolicy struct {
	FlatCost          float64
	AvailableCommunes []string
	Zones             []Zone
	DefaultEstimate   string
}

// Delivery.Commune is the stored spelling of the matched zone or allowlist
// entry, or the trimmed input when neither matched.
type Delivery struct {
	Commune       string  `json:"commune,omitempty"`
	Fee           float64 `json:"fee"`
	Available     bool    `json:"available"`
	EstimatedTime string  `json:"estimated_time"`
}

type Quote struct {
	Subtotal     float64  `json:"subtotal"`
	Discount     float64  `json:"discount"`
	Delivery     Delivery `json:"delivery"`
	Total        float64  `json:"total"`
	Minimum      float64  `json:"minimum_order"`
	MeetsMinimum bool     `json:"meets_minimum"`
	CouponCode   string   `json:"coupon_code,omitempty"`
}

func Subtotal(lines []Line) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromFloat(l.Quantity)))
	}
	return sum.InexactFloat64()
}

// Discount never exceeds the subtotal for percentage coupons.
func Discount(subtotal float64, c *Coupon) float64 {
	if c == nil {
		return 0
	}
	switch c.Type {
	case CouponPercentage:
		sub := decimal.NewFromFloat(subtotal)
		d := sub.Mul(decimal.NewFromFloat(c.Value)).Div(decimal.NewFromInt(100)).Round(0)
		if d.GreaterThan(sub) {
			d = sub
		}
		return d.InexactFloat64()
	default:
		return c.Value
	}
}

// NormalizeCommune is the matching key for commune names.
func NormalizeCommune(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (p DeliveryPolicy) Resolve(commune string) Delivery {
	key := NormalizeCommune(commune)
	if key == "" {
		return Delivery{Fee: 0, Available: false, EstimatedTime: p.DefaultEstimate}
	}
	name := strings.TrimSpace(commune)

	if len(p.AvailableCommunes) > 0 {
		listed, ok := lookup(p.AvailableCommunes, key)
		if !ok {
			return Delivery{Commune: name, Fee: p.FlatCost, Available: false, EstimatedTime: p.DefaultEstimate}
		}
		name = listed
	}

	if zone, ok := p.zone(key); ok && zone.Active {
		estimate := zone.EstimatedTime
		if estimate == "" {
			estimate = p.DefaultEstimate
		}
		if zone.Free {
			return Delivery{Commune: zone.Name, Fee: 0, Available: true, EstimatedTime: estimate}
		}
		return Delivery{Commune: zone.Name, Fee: zone.Price, Available: true, EstimatedTime: estimate}
	}

	return Delivery{Commune: name, Fee: p.FlatCost, Available: true, EstimatedTime: p.DefaultEstimate}
}

func (p DeliveryPolicy) zone(key string) (Zone, bool) {
	for _, z := range p.Zones {
		if NormalizeCommune(z.Name) == key {
			return z, true
		}
	}
	return Zone{}, false
}

func FinalTotal(subtotal, discount, fee float64) float64 {
	return decimal.NewFromFloat(subtotal).
		Sub(decimal.NewFromFloat(discount)).
		Add(decimal.NewFromFloat(fee)).
		InexactFloat64()
}

func MeetsMinimum(total, minimum float64) bool {
	return decimal.NewFromFloat(total).GreaterThanOrEqual(decimal.NewFromFloat(minimum))
}

func Compute(lines []Line, coupon *Coupon, commune string, policy DeliveryPolicy, minimum float64) Quote {
	subtotal := Subtotal(lines)
	discount := Discount(subtotal, coupon)
	delivery := policy.Resolve(commune)
	total := FinalTotal(subtotal, discount, delivery.Fee)

	q := Quote{
		Subtotal:     subtotal,
		Discount:     discount,
		Delivery:     delivery,
		Total:        total,
		Minimum:      minimum,
		MeetsMinimum: MeetsMinimum(total, minimum),
	}
	if coupon != nil {
		q.CouponCode = coupon.Code
	}
	return q
}

func lookup(list []string, key string) (string, bool) {
	for _, s := range list {
		if NormalizeCommune(s) == key {
			return strings.TrimSpace(s), true
		}
	}
	return "", false
}
