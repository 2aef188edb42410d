package storage

import (
	"database/sql"
	"errors"

	"alianza-shop/shop-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) CreateCategory(c *domain.Category) error {
	return r.DB.QueryRow(`
		INSERT INTO categories (name, description, image, display_order, is_visible)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		c.Name, c.Description, c.Image, c.Order, c.IsVisible,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) ListCategories(visibleOnly bool) ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), COALESCE(image, ''), display_order, is_visible, created_at
		FROM categories
		WHERE ($1 = false OR is_visible = true)
		ORDER BY display_order, name`, visibleOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.Order, &c.IsVisible, &c.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), COALESCE(image, ''), display_order, is_visible, created_at
		FROM categories
		WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.Order, &c.IsVisible, &c.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(c *domain.Category) error {
	err := r.DB.QueryRow(`
		UPDATE categories
		SET name=$1, description=$2, image=$3, display_order=$4, is_visible=$5
		WHERE id=$6
		RETURNING created_at`,
		c.Name, c.Description, c.Image, c.Order, c.IsVisible, c.ID).
		Scan(&c.CreatedAt)
	return notFound(err)
}

func (r *PostgresRepository) DeleteCategory(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM categories WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetCategoryVisibility(id int, visible bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE categories SET is_visible=$1 WHERE id=$2", visible, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const productColumns = `p.id, COALESCE(p.category_id, 0), COALESCE(c.name, 'Sin categoría'), p.name,
		COALESCE(p.description, ''), p.price, COALESCE(p.image, ''), p.stock, p.unit_type, p.is_visible, p.created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.CategoryName, &p.Name, &p.Description,
		&p.Price, &p.Image, &p.Stock, &p.UnitType, &p.IsVisible, &p.CreatedAt)
	return p, err
}

func (r *PostgresRepository) queryProducts(query string, args ...any) ([]domain.Product, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) ListProducts() ([]domain.Product, error) {
	return r.queryProducts(`
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.name`)
}

func (r *PostgresRepository) ListProductsByCategory(categoryID int) ([]domain.Product, error) {
	return r.queryProducts(`
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.category_id = $1 AND p.is_visible = true
		ORDER BY p.name`, categoryID)
}

func (r *PostgresRepository) SearchProducts(query string) ([]domain.Product, error) {
	return r.queryProducts(`
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_visible = true AND (p.name ILIKE $1 OR p.description ILIKE $1)
		ORDER BY p.name`, "%"+query+"%")
}

func (r *PostgresRepository) GetProduct(id int) (*domain.Product, error) {
	p, err := scanProduct(r.DB.QueryRow(`
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PostgresRepository) CreateProduct(p *domain.Product) error {
	return r.DB.QueryRow(`
		INSERT INTO products (category_id, name, description, price, image, stock, unit_type, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		p.CategoryID, p.Name, p.Description, p.Price, p.Image, p.Stock, p.UnitType, p.IsVisible,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) UpdateProduct(p *domain.Product) error {
	err := r.DB.QueryRow(`
		UPDATE products
		SET category_id=$1, name=$2, description=$3, price=$4, image=$5, stock=$6, unit_type=$7, is_visible=$8
		WHERE id=$9
		RETURNING created_at`,
		p.CategoryID, p.Name, p.Description, p.Price, p.Image, p.Stock, p.UnitType, p.IsVisible, p.ID).
		Scan(&p.CreatedAt)
	return notFound(err)
}

func (r *PostgresRepository) DeleteProduct(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM products WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetProductVisibility(id int, visible bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE products SET is_visible=$1 WHERE id=$2", visible, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateStock(id int, stock float64) (int64, error) {
	result, err := r.DB.Exec("UPDATE products SET stock=$1 WHERE id=$2", stock, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
