package storage

import (
	"database/sql"
	"fmt"

	"alianza-shop/shop-svc/internal/domain"
)

// Statements is the full store schema; every statement is idempotent.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		image TEXT,
		display_order INT NOT NULL DEFAULT 0,
		is_visible BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		category_id INT REFERENCES categories(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		image TEXT,
		stock NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (stock >= 0),
		unit_type TEXT NOT NULL DEFAULT 'kg',
		is_visible BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS daily_offers (
		id SERIAL PRIMARY KEY,
		product_id INT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		discount_percentage NUMERIC(5,2) NOT NULL,
		original_price NUMERIC(12,2) NOT NULL,
		discounted_price NUMERIC(12,2) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT NOT NULL UNIQUE,
		address TEXT,
		commune TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id INT REFERENCES customers(id) ON DELETE SET NULL,
		customer_name TEXT NOT NULL,
		customer_email TEXT,
		customer_phone TEXT NOT NULL,
		address TEXT NOT NULL,
		commune TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		total NUMERIC(12,2) NOT NULL,
		original_total NUMERIC(12,2) NOT NULL,
		discount NUMERIC(12,2) NOT NULL DEFAULT 0,
		delivery_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
		coupon_code TEXT,
		estimated_delivery TEXT,
		qr_code BYTEA,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id INT NOT NULL,
		product_name TEXT NOT NULL,
		quantity NUMERIC(10,2) NOT NULL,
		price NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_zones (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		delivery_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		estimated_time TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		free_delivery BOOLEAN NOT NULL DEFAULT false
	)`,
	`CREATE TABLE IF NOT EXISTS store_locations (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		commune TEXT NOT NULL,
		phone TEXT NOT NULL,
		hours TEXT,
		latitude DOUBLE PRECISION NOT NULL DEFAULT -33.4489,
		longitude DOUBLE PRECISION NOT NULL DEFAULT -70.6693,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS system_configurations (
		key TEXT PRIMARY KEY,
		value TEXT,
		description TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS admin_users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		discount_type TEXT NOT NULL,
		discount_value NUMERIC(12,2) NOT NULL,
		min_order_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		max_discount_amount NUMERIC(12,2),
		usage_limit INT,
		used_count INT NOT NULL DEFAULT 0,
		start_date TIMESTAMPTZ,
		end_date TIMESTAMPTZ,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS coupon_usage (
		id SERIAL PRIMARY KEY,
		coupon_id INT NOT NULL REFERENCES coupons(id) ON DELETE CASCADE,
		order_id TEXT NOT NULL,
		customer_id INT,
		discount_amount NUMERIC(12,2) NOT NULL,
		used_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (coupon_id, order_id)
	)`,
	`CREATE TABLE IF NOT EXISTS analytics (
		date DATE PRIMARY KEY,
		total_sales NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_orders INT NOT NULL DEFAULT 0,
		new_customers INT NOT NULL DEFAULT 0,
		total_discount NUMERIC(14,2) NOT NULL DEFAULT 0
	)`,
	"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)",
	"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
	"CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)",
}

func EnsureSchema(db *sql.DB) error {
	for _, stmt := range Statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, r := range stmt {
		if r == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}

var seedCategories = []domain.Category{
	{Name: "Vacuno", Description: "Cortes de vacuno seleccionados", Order: 1, IsVisible: true},
	{Name: "Cortes Premium", Description: "Lo mejor para ocasiones especiales", Order: 2, IsVisible: true},
	{Name: "Cortes de Parrilla", Description: "Ideales para el asado", Order: 3, IsVisible: true},
	{Name: "Pollo", Description: "Pollo fresco de campo", Order: 4, IsVisible: true},
	{Name: "Cerdo", Description: "Cortes de cerdo", Order: 5, IsVisible: true},
	{Name: "Longanizas/Chorizos/Prietas", Description: "Embutidos artesanales", Order: 6, IsVisible: true},
}

var seedZones = []domain.DeliveryZone{
	{Name: "Las Condes", DeliveryPrice: 2500, EstimatedTime: "30-45 minutos", IsActive: true},
	{Name: "Providencia", DeliveryPrice: 2000, EstimatedTime: "30-45 minutos", IsActive: true},
	{Name: "Santiago", DeliveryPrice: 1500, EstimatedTime: "25-40 minutos", IsActive: true},
	{Name: "Ñuñoa", DeliveryPrice: 2000, EstimatedTime: "35-50 minutos", IsActive: true},
	{Name: "Maipú", DeliveryPrice: 3500, EstimatedTime: "50-70 minutos", IsActive: true},
	{Name: "La Florida", DeliveryPrice: 4000, EstimatedTime: "60-80 minutos", IsActive: true},
}

var seedConfigurations = []domain.ConfigEntry{
	{Key: "whatsapp_number", Value: "+56912345678", Description: "Número de contacto"},
	{Key: "shipping_cost", Value: "3000", Description: "Costo de envío por defecto"},
	{Key: "minimum_order", Value: "20000", Description: "Pedido mínimo"},
	{Key: "available_communes", Value: `["Las Condes","Providencia","Santiago","Ñuñoa","Maipú","La Florida"]`, Description: "Comunas con despacho"},
	{Key: "delivery_time", Value: "24-48 horas", Description: "Tiempo de entrega por defecto"},
	{Key: "confirmation_message", Value: "Gracias por tu pedido.", Description: "Mensaje de confirmación"},
}

// Seed loads the default catalog skeleton, delivery zones, settings and the admin account.
// Existing rows are left untouched.
func Seed(db *sql.DB, admin domain.AdminUser) error {
	repo := NewPostgresRepository(db)

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		for i := range seedCategories {
			c := seedCategories[i]
			if err := repo.CreateCategory(&c); err != nil {
				return fmt.Errorf("seed category %s: %w", c.Name, err)
			}
		}
	}

	for _, z := range seedZones {
		if _, err := db.Exec(`
			INSERT INTO delivery_zones (name, delivery_price, estimated_time, is_active, free_delivery)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING`,
			z.Name, z.DeliveryPrice, z.EstimatedTime, z.IsActive, z.FreeDelivery); err != nil {
			return fmt.Errorf("seed zone %s: %w", z.Name, err)
		}
	}

	for _, e := range seedConfigurations {
		if _, err := db.Exec(`
			INSERT INTO system_configurations (key, value, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO NOTHING`,
			e.Key, e.Value, e.Description); err != nil {
			return fmt.Errorf("seed configuration %s: %w", e.Key, err)
		}
	}

	if admin.Username != "" {
		if err := repo.UpsertAdmin(&admin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}
	return nil
}
