// Package whatsapp builds wa.me deep links for the store's contact number.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const InquiryMessage = "Hola, me gustaría obtener más información sobre sus productos."

// Digits strips everything except 0-9 from a phone number.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func Link(number, message string) string {
	link := "https://wa.me/" + Digits(number)
	if message == "" {
		return link
	}
	return link + "?text=" + url.QueryEscape(message)
}

type OrderSummary struct {
	OrderID           string
	CustomerName      string
	ClientCode        string
	Total             float64
	Address           string
	Commune           string
	EstimatedDelivery string
}

func OrderMessage(o OrderSummary) string {
	var b strings.Builder
	b.WriteString("¡Hola! 👋\n\nHe realizado un pedido en La Alianza:\n\n")
	fmt.Fprintf(&b, "📋 *Pedido:* %s\n", o.OrderID)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📱 *Código:* %s\n", o.ClientCode)
	fmt.Fprintf(&b, "💰 *Total:* $%s\n", FormatCLP(o.Total))
	fmt.Fprintf(&b, "📍 *Dirección:* %s, %s\n", o.Address, o.Commune)
	fmt.Fprintf(&b, "⏰ *Tiempo estimado:* %s\n\n", o.EstimatedDelivery)
	b.WriteString("¿Podrían confirmar que el pedido está en proceso? ¡Gracias!")
	return b.String()
}

// FormatCLP renders whole pesos with dot thousands separators (es-CL).
func FormatCLP(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	neg := d.IsNegative()
	digits := d.Abs().String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
