package storage

import (
	"time"

	"alianza-shop/shop-svc/internal/domain"
)

const offerColumns = `o.id, o.product_id, o.discount_percentage, o.original_price, o.discounted_price,
		o.start_date, o.end_date, o.is_active, o.created_at,
		p.name, COALESCE(p.description, ''), COALESCE(p.image, ''), COALESCE(p.category_id, 0), p.stock`

func scanOffer(row scanner) (domain.DailyOffer, error) {
	var o domain.DailyOffer
	p := &domain.Product{}
	err := row.Scan(&o.ID, &o.ProductID, &o.DiscountPercentage, &o.OriginalPrice, &o.DiscountedPrice,
		&o.StartDate, &o.EndDate, &o.IsActive, &o.CreatedAt,
		&p.Name, &p.Description, &p.Image, &p.CategoryID, &p.Stock)
	p.ID = o.ProductID
	o.Product = p
	return o, err
}

func (r *PostgresRepository) queryOffers(query string, args ...any) ([]domain.DailyOffer, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []domain.DailyOffer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			continue
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// ListActiveOffers returns active offers whose window contains day.
func (r *PostgresRepository) ListActiveOffers(day time.Time) ([]domain.DailyOffer, error) {
	return r.queryOffers(`
		SELECT `+offerColumns+`
		FROM daily_offers o
		JOIN products p ON p.id = o.product_id
		WHERE o.is_active = true AND o.start_date <= $1 AND o.end_date >= $1
		ORDER BY o.discount_percentage DESC`, day)
}

func (r *PostgresRepository) ListOffers() ([]domain.DailyOffer, error) {
	return r.queryOffers(`
		SELECT ` + offerColumns + `
		FROM daily_offers o
		JOIN products p ON p.id = o.product_id
		ORDER BY o.created_at DESC`)
}

func (r *PostgresRepository) GetOffer(id int) (*domain.DailyOffer, error) {
	o, err := scanOffer(r.DB.QueryRow(`
		SELECT `+offerColumns+`
		FROM daily_offers o
		JOIN products p ON p.id = o.product_id
		WHERE o.id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *PostgresRepository) CreateOffer(o *domain.DailyOffer) error {
	return r.DB.QueryRow(`
		INSERT INTO daily_offers (product_id, discount_percentage, original_price, discounted_price, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		o.ProductID, o.DiscountPercentage, o.OriginalPrice, o.DiscountedPrice, o.StartDate, o.EndDate, o.IsActive,
	).Scan(&o.ID, &o.CreatedAt)
}

func (r *PostgresRepository) UpdateOffer(o *domain.DailyOffer) error {
	err := r.DB.QueryRow(`
		UPDATE daily_offers
		SET product_id=$1, discount_percentage=$2, original_price=$3, discounted_price=$4,
			start_date=$5, end_date=$6, is_active=$7
		WHERE id=$8
		RETURNING created_at`,
		o.ProductID, o.DiscountPercentage, o.OriginalPrice, o.DiscountedPrice, o.StartDate, o.EndDate, o.IsActive, o.ID).
		Scan(&o.CreatedAt)
	return notFound(err)
}

func (r *PostgresRepository) DeleteOffer(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM daily_offers WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetOfferActive(id int, active bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE daily_offers SET is_active=$1 WHERE id=$2", active, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
