// Package settings resolves the system_configurations key/value table into a
// typed record with explicit defaults, and keeps it cached until an update
// signal arrives.
package settings

import (
	"encoding/json"
	"strconv"
	"strings"

	"alianza-shop/shop-svc/internal/domain"
	"alianza-shop/shop-svc/internal/pricing"

	"go.uber.org/zap"
)

const (
	KeyAdminEmail             = "admin_email"
	KeyWhatsAppNumber         = "whatsapp_number"
	KeyShippingCost           = "shipping_cost"
	KeyMinimumOrder           = "minimum_order"
	KeyAvailableCommunes      = "available_communes"
	KeyConfirmationMessage    = "confirmation_message"
	KeyBusinessHours          = "business_hours"
	KeyDeliveryTime           = "delivery_time"
	KeyInfoBarMessage         = "info_bar_message"
	KeyInfoBarSecondary       = "info_bar_secondary"
	KeyInfoBarActive          = "info_bar_active"
	KeyHeroTitle              = "hero_title"
	KeyHeroSubtitle           = "hero_subtitle"
	KeyOffersSectionTitle     = "offers_section_title"
	KeyCategoriesSectionTitle = "categories_section_title"
	KeyFooterCompanyName      = "footer_company_name"
	KeyFooterDescription      = "footer_description"
	KeyFooterAddress          = "footer_address"
	KeyFooterPhone            = "footer_phone"
	KeyFooterEmail            = "footer_email"
	KeyFooterFacebook         = "footer_social_facebook"
	KeyFooterInstagram        = "footer_social_instagram"
	KeyFooterActive           = "footer_active"
)

type InfoBar struct {
	Message   string `json:"message"`
	Secondary string `json:"secondary"`
	Active    bool   `json:"active"`
}

type Footer struct {
	CompanyName string `json:"company_name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	Active      bool   `json:"active"`
}

type StoreSettings struct {
	AdminEmail             string                 `json:"admin_email"`
	WhatsAppNumber         string                 `json:"whatsapp_number"`
	ShippingCost           float64                `json:"shipping_cost"`
	MinimumOrder           float64                `json:"minimum_order"`
	AvailableCommunes      []string               `json:"available_communes"`
	ConfirmationMessage    string                 `json:"confirmation_message"`
	BusinessHours          map[string]interface{} `json:"business_hours"`
	DeliveryTime           string                 `json:"delivery_time"`
	InfoBar                InfoBar                `json:"info_bar"`
	HeroTitle              string                 `json:"hero_title"`
	HeroSubtitle           string                 `json:"hero_subtitle"`
	OffersSectionTitle     string                 `json:"offers_section_title"`
	CategoriesSectionTitle string                 `json:"categories_section_title"`
	Footer                 Footer                 `json:"footer"`
}

func Defaults() StoreSettings {
	return StoreSettings{
		WhatsAppNumber:         "+56912345678",
		ShippingCost:           3000,
		MinimumOrder:           20000,
		AvailableCommunes:      []string{},
		ConfirmationMessage:    "Gracias por tu pedido.",
		BusinessHours:          map[string]interface{}{},
		DeliveryTime:           "24-48 horas",
		InfoBar:                InfoBar{Active: true},
		HeroTitle:              "Carnicería Premium",
		HeroSubtitle:           "Las mejores carnes frescas, seleccionadas especialmente para tu mesa. Calidad premium, servicio excepcional.",
		OffersSectionTitle:     "Ofertas del Día",
		CategoriesSectionTitle: "Nuestras Categorías",
		Footer: Footer{
			CompanyName: "LA ALIANZA CARNICERIAS",
			Description: "Tu carnicería de confianza con las mejores carnes premium de Santiago.",
			Address:     "Santiago, Chile",
			Phone:       "+56912345678",
			Email:       "contacto@laalianza.cl",
			Active:      true,
		},
	}
}

// Parse resolves raw entries once. Malformed values keep their default.
func Parse(entries []domain.ConfigEntry, logger *zap.Logger) StoreSettings {
	if logger == nil {
		logger = zap.NewNop()
	}
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = strings.TrimSpace(e.Value)
	}

	s := Defaults()
	str := func(key string, dst *string) {
		if v, ok := values[key]; ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *float64) {
		v, ok := values[key]
		if !ok || v == "" {
			return
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			logger.Warn("invalid numeric configuration, using default", zap.String("key", key), zap.String("value", v))
			return
		}
		*dst = f
	}
	flag := func(key string, dst *bool) {
		if v, ok := values[key]; ok && v != "" {
			*dst = v == "true" || v == "1"
		}
	}

	str(KeyAdminEmail, &s.AdminEmail)
	str(KeyWhatsAppNumber, &s.WhatsAppNumber)
	num(KeyShippingCost, &s.ShippingCost)
	num(KeyMinimumOrder, &s.MinimumOrder)
	str(KeyConfirmationMessage, &s.ConfirmationMessage)
	str(KeyDeliveryTime, &s.DeliveryTime)
	str(KeyInfoBarMessage, &s.InfoBar.Message)
	str(KeyInfoBarSecondary, &s.InfoBar.Secondary)
	flag(KeyInfoBarActive, &s.InfoBar.Active)
	str(KeyHeroTitle, &s.HeroTitle)
	str(KeyHeroSubtitle, &s.HeroSubtitle)
	str(KeyOffersSectionTitle, &s.OffersSectionTitle)
	str(KeyCategoriesSectionTitle, &s.CategoriesSectionTitle)
	str(KeyFooterCompanyName, &s.Footer.CompanyName)
	str(KeyFooterDescription, &s.Footer.Description)
	str(KeyFooterAddress, &s.Footer.Address)
	str(KeyFooterPhone, &s.Footer.Phone)
	str(KeyFooterEmail, &s.Footer.Email)
	str(KeyFooterFacebook, &s.Footer.Facebook)
	str(KeyFooterInstagram, &s.Footer.Instagram)
	flag(KeyFooterActive, &s.Footer.Active)

	if v := values[KeyAvailableCommunes]; v != "" {
		var communes []string
		if err := json.Unmarshal([]byte(v), &communes); err != nil {
			logger.Warn("invalid available_communes, using []", zap.Error(err))
		} else {
			s.AvailableCommunes = communes
		}
	}
	if v := values[KeyBusinessHours]; v != "" {
		var hours map[string]interface{}
		if err := json.Unmarshal([]byte(v), &hours); err != nil || hours == nil {
			logger.Warn("invalid business_hours, using {}", zap.String("value", v))
		} else {
			s.BusinessHours = hours
		}
	}

	return s
}

// DeliveryPolicy combines the settings with the active zone table.
func (s StoreSettings) DeliveryPolicy(zones []domain.DeliveryZone) pricing.DeliveryPolicy {
	table := make([]pricing.Zone, 0, len(zones))
	for _, z := range zones {
		table = append(table, pricing.Zone{
			Name:          z.Name,
			Price:         z.DeliveryPrice,
			EstimatedTime: z.EstimatedTime,
			Active:        z.IsActive,
			Free:          z.FreeDelivery,
		})
	}
	return pricing.DeliveryPolicy{
		FlatCost:          s.ShippingCost,
		AvailableCommunes: s.AvailableCommunes,
		Zones:             table,
		DefaultEstimate:   s.DeliveryTime,
	}
}
