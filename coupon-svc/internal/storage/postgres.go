package storage

import (
	"database/sql"
	"errors"
	"time"

	"alianza-shop/coupon-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateCode
	}
	return err
}

const couponColumns = `id, code, name, COALESCE(description, ''), discount_type, discount_value, min_order_amount,
		max_discount_amount, usage_limit, used_count, start_date, end_date, is_active, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row scanner) (domain.Coupon, error) {
	var (
		c           domain.Coupon
		maxDiscount sql.NullFloat64
		usageLimit  sql.NullInt64
		start, end  sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.Type, &c.Value, &c.MinOrderAmount,
		&maxDiscount, &usageLimit, &c.UsedCount, &start, &end, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return c, err
	}
	if maxDiscount.Valid {
		c.MaxDiscountAmount = &maxDiscount.Float64
	}
	if usageLimit.Valid {
		limit := int(usageLimit.Int64)
		c.UsageLimit = &limit
	}
	if start.Valid {
		c.StartDate = &start.Time
	}
	if end.Valid {
		c.EndDate = &end.Time
	}
	return c, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func (r *PostgresRepository) ListCoupons(activeOnly bool) ([]domain.Coupon, error) {
	rows, err := r.DB.Query(`
		SELECT `+couponColumns+`
		FROM coupons
		WHERE ($1 = false OR (is_active = true AND (end_date IS NULL OR end_date >= CURRENT_TIMESTAMP)))
		ORDER BY created_at DESC`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := []domain.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			continue
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *PostgresRepository) GetCoupon(id int) (*domain.Coupon, error) {
	c, err := scanCoupon(r.DB.QueryRow(`SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *PostgresRepository) GetCouponByCode(code string) (*domain.Coupon, error) {
	c, err := scanCoupon(r.DB.QueryRow(`SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code))
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCoupon(c *domain.Coupon) error {
	err := r.DB.QueryRow(`
		INSERT INTO coupons (code, name, description, discount_type, discount_value, min_order_amount,
			max_discount_amount, usage_limit, start_date, end_date, is_active)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, used_count, created_at`,
		c.Code, c.Name, c.Description, c.Type, c.Value, c.MinOrderAmount,
		nullFloat(c.MaxDiscountAmount), nullInt(c.UsageLimit), nullTime(c.StartDate), nullTime(c.EndDate), c.IsActive,
	).Scan(&c.ID, &c.UsedCount, &c.CreatedAt)
	return mapError(err)
}

func (r *PostgresRepository) UpdateCoupon(c *domain.Coupon) error {
	err := r.DB.QueryRow(`
		UPDATE coupons
		SET code=$1, name=$2, description=NULLIF($3, ''), discount_type=$4, discount_value=$5, min_order_amount=$6,
			max_discount_amount=$7, usage_limit=$8, start_date=$9, end_date=$10, is_active=$11
		WHERE id=$12
		RETURNING used_count, created_at`,
		c.Code, c.Name, c.Description, c.Type, c.Value, c.MinOrderAmount,
		nullFloat(c.MaxDiscountAmount), nullInt(c.UsageLimit), nullTime(c.StartDate), nullTime(c.EndDate), c.IsActive, c.ID,
	).Scan(&c.UsedCount, &c.CreatedAt)
	return mapError(err)
}

func (r *PostgresRepository) DeleteCoupon(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM coupons WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetCouponActive(id int, active bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE coupons SET is_active=$1 WHERE id=$2", active, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// RecordUsage stores the redemption and bumps used_count in one transaction.
// It reports false when the order had already redeemed this coupon.
func (r *PostgresRepository) RecordUsage(u *domain.Usage) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`SELECT id FROM coupons WHERE code = $1 FOR UPDATE`, u.Code).Scan(&u.CouponID); err != nil {
		return false, mapError(err)
	}

	result, err := tx.Exec(`
		INSERT INTO coupon_usage (coupon_id, order_id, customer_id, discount_amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (coupon_id, order_id) DO NOTHING`,
		u.CouponID, u.OrderID, nullInt(u.CustomerID), u.DiscountAmount)
	if err != nil {
		return false, err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return false, tx.Commit()
	}

	if _, err := tx.Exec(`UPDATE coupons SET used_count = used_count + 1 WHERE id = $1`, u.CouponID); err != nil {
		return false, err
	}
	return true, tx.Commit()
}
