package storage

import (
	"database/sql"

	"alianza-shop/analytics-svc/internal/domain"
)

type PostgresReports struct {
	DB *sql.DB
}

func NewPostgresReports(db *sql.DB) *PostgresReports {
	return &PostgresReports{DB: db}
}

func (r *PostgresReports) DailyAnalytics(days int) ([]domain.DailyAnalytics, error) {
	rows, err := r.DB.Query(`
		SELECT to_char(date, 'YYYY-MM-DD'), total_sales, total_orders, new_customers, total_discount
		FROM analytics
		ORDER BY date DESC
		LIMIT $1`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	series := []domain.DailyAnalytics{}
	for rows.Next() {
		var d domain.DailyAnalytics
		if err := rows.Scan(&d.Date, &d.TotalSales, &d.TotalOrders, &d.NewCustomers, &d.TotalDiscount); err != nil {
			continue
		}
		series = append(series, d)
	}
	return series, rows.Err()
}

func (r *PostgresReports) TopProducts(limit int) ([]domain.ProductSales, error) {
	rows, err := r.DB.Query(`
		SELECT oi.product_id, MAX(oi.product_name), SUM(oi.quantity), SUM(oi.quantity * oi.price)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status <> 'cancelled'
		GROUP BY oi.product_id
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.ProductSales{}
	for rows.Next() {
		var p domain.ProductSales
		if err := rows.Scan(&p.ProductID, &p.Name, &p.Sales, &p.Revenue); err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresReports) InventoryAlerts(threshold float64) ([]domain.InventoryAlert, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, stock, unit_type
		FROM products
		WHERE stock <= $1
		ORDER BY stock, name`, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []domain.InventoryAlert{}
	for rows.Next() {
		var a domain.InventoryAlert
		if err := rows.Scan(&a.ID, &a.Name, &a.Stock, &a.UnitType); err != nil {
			continue
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *PostgresReports) FrequentCustomers(limit int) ([]domain.FrequentCustomer, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.name, COUNT(o.id), COALESCE(SUM(o.total), 0)
		FROM customers c
		JOIN orders o ON o.customer_id = c.id
		WHERE o.status <> 'cancelled'
		GROUP BY c.id, c.name
		ORDER BY COUNT(o.id) DESC, SUM(o.total) DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.FrequentCustomer{}
	for rows.Next() {
		var c domain.FrequentCustomer
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Orders, &c.TotalSpent); err != nil {
			continue
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// SalesByCategory lists every category with its revenue; Percentage is left to the caller.
func (r *PostgresReports) SalesByCategory() ([]domain.CategorySales, error) {
	rows, err := r.DB.Query(`
		SELECT c.id, c.name, COALESCE(SUM(oi.quantity * oi.price), 0) AS amount
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		LEFT JOIN order_items oi ON oi.product_id = p.id
		GROUP BY c.id, c.name
		ORDER BY amount DESC, c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []domain.CategorySales{}
	for rows.Next() {
		var s domain.CategorySales
		if err := rows.Scan(&s.CategoryID, &s.Category, &s.Amount); err != nil {
			continue
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
