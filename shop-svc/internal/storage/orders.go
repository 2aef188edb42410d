package storage

import (
	"database/sql"

	"alianza-shop/shop-svc/internal/domain"

	"github.com/lib/pq"
)

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var customerID sql.NullInt64
	if order.CustomerID != nil {
		customerID = sql.NullInt64{Int64: int64(*order.CustomerID), Valid: true}
	}

	if err := tx.QueryRow(`
		INSERT INTO orders (id, customer_id, customer_name, customer_email, customer_phone, address, commune,
			status, total, original_total, discount, delivery_fee, coupon_code, estimated_delivery)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, ''), $14)
		RETURNING created_at
	`, order.ID, customerID, order.CustomerName, order.CustomerEmail, order.CustomerPhone, order.Address, order.Commune,
		order.Status, order.Total, order.OriginalTotal, order.Discount, order.DeliveryFee, order.CouponCode, order.EstimatedDelivery,
	).Scan(&order.CreatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, product_id, product_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ProductID, item.ProductName, item.Quantity, item.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `id, customer_id, customer_name, COALESCE(customer_email, ''), customer_phone, address, commune,
		status, total, original_total, discount, delivery_fee, COALESCE(coupon_code, ''), COALESCE(estimated_delivery, ''), created_at`

func scanOrder(row scanner) (domain.Order, error) {
	var o domain.Order
	var customerID sql.NullInt64
	err := row.Scan(&o.ID, &customerID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Address, &o.Commune,
		&o.Status, &o.Total, &o.OriginalTotal, &o.Discount, &o.DeliveryFee, &o.CouponCode, &o.EstimatedDelivery, &o.CreatedAt)
	if customerID.Valid {
		id := int(customerID.Int64)
		o.CustomerID = &id
	}
	return o, err
}

func (r *PostgresRepository) GetOrder(orderID string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, notFound(err)
	}

	items, err := r.orderItems([]string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []string{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.orderItems(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT order_id, product_id, product_name, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem)
	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			continue
		}
		items[orderID] = append(items[orderID], item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(orderID string, status domain.OrderStatus) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status=$1 WHERE id=$2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID string, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr); err != nil {
		return nil, notFound(err)
	}
	return qr, nil
}

const customerQuery = `
		SELECT c.id, c.name, COALESCE(c.email, ''), c.phone, COALESCE(c.address, ''), COALESCE(c.commune, ''),
			COUNT(o.id), COALESCE(SUM(o.total), 0), MAX(o.created_at), c.created_at
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id AND o.status <> 'cancelled'`

func scanCustomer(row scanner) (domain.Customer, error) {
	var c domain.Customer
	var lastOrder sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Commune,
		&c.TotalOrders, &c.TotalSpent, &lastOrder, &c.CreatedAt)
	if lastOrder.Valid {
		t := lastOrder.Time
		c.LastOrder = &t
	}
	return c, err
}

func (r *PostgresRepository) ListCustomers() ([]domain.Customer, error) {
	rows, err := r.DB.Query(customerQuery + `
		GROUP BY c.id
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			continue
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) GetCustomer(id int) (*domain.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRow(customerQuery+`
		WHERE c.id = $1
		GROUP BY c.id`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PostgresRepository) GetCustomerByPhone(phone string) (*domain.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRow(customerQuery+`
		WHERE c.phone = $1
		GROUP BY c.id`, phone))
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCustomer(c *domain.Customer) error {
	return r.DB.QueryRow(`
		INSERT INTO customers (name, email, phone, address, commune)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)
		RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Address, c.Commune,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) UpdateCustomer(c *domain.Customer) error {
	err := r.DB.QueryRow(`
		UPDATE customers
		SET name=$1, email=NULLIF($2, ''), address=$3, commune=$4
		WHERE id=$5
		RETURNING phone, created_at`,
		c.Name, c.Email, c.Address, c.Commune, c.ID).
		Scan(&c.Phone, &c.CreatedAt)
	return notFound(err)
}
