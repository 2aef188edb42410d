package storage

import (
	"alianza-shop/shop-svc/internal/domain"
)

func (r *PostgresRepository) ListZones(activeOnly bool) ([]domain.DeliveryZone, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, delivery_price, COALESCE(estimated_time, ''), is_active, free_delivery
		FROM delivery_zones
		WHERE ($1 = false OR is_active = true)
		ORDER BY name`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []domain.DeliveryZone{}
	for rows.Next() {
		var z domain.DeliveryZone
		if err := rows.Scan(&z.ID, &z.Name, &z.DeliveryPrice, &z.EstimatedTime, &z.IsActive, &z.FreeDelivery); err != nil {
			continue
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *PostgresRepository) CreateZone(z *domain.DeliveryZone) error {
	return r.DB.QueryRow(`
		INSERT INTO delivery_zones (name, delivery_price, estimated_time, is_active, free_delivery)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		z.Name, z.DeliveryPrice, z.EstimatedTime, z.IsActive, z.FreeDelivery,
	).Scan(&z.ID)
}

func (r *PostgresRepository) UpdateZone(z *domain.DeliveryZone) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE delivery_zones
		SET name=$1, delivery_price=$2, estimated_time=$3, is_active=$4, free_delivery=$5
		WHERE id=$6`,
		z.Name, z.DeliveryPrice, z.EstimatedTime, z.IsActive, z.FreeDelivery, z.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetZoneActive(id int, active bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE delivery_zones SET is_active=$1 WHERE id=$2", active, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const locationColumns = `id, name, address, commune, phone, COALESCE(hours, ''), latitude, longitude,
		COALESCE(description, ''), is_active, created_at`

func scanLocation(row scanner) (domain.StoreLocation, error) {
	var l domain.StoreLocation
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.Commune, &l.Phone, &l.Hours,
		&l.Latitude, &l.Longitude, &l.Description, &l.IsActive, &l.CreatedAt)
	return l, err
}

func (r *PostgresRepository) ListLocations(activeOnly bool) ([]domain.StoreLocation, error) {
	rows, err := r.DB.Query(`
		SELECT `+locationColumns+`
		FROM store_locations
		WHERE ($1 = false OR is_active = true)
		ORDER BY name`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []domain.StoreLocation{}
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			continue
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *PostgresRepository) GetLocation(id int) (*domain.StoreLocation, error) {
	l, err := scanLocation(r.DB.QueryRow(`SELECT `+locationColumns+` FROM store_locations WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *PostgresRepository) CreateLocation(l *domain.StoreLocation) error {
	return r.DB.QueryRow(`
		INSERT INTO store_locations (name, address, commune, phone, hours, latitude, longitude, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		l.Name, l.Address, l.Commune, l.Phone, l.Hours, l.Latitude, l.Longitude, l.Description, l.IsActive,
	).Scan(&l.ID, &l.CreatedAt)
}

func (r *PostgresRepository) UpdateLocation(l *domain.StoreLocation) error {
	err := r.DB.QueryRow(`
		UPDATE store_locations
		SET name=$1, address=$2, commune=$3, phone=$4, hours=$5, latitude=$6, longitude=$7, description=$8, is_active=$9
		WHERE id=$10
		RETURNING created_at`,
		l.Name, l.Address, l.Commune, l.Phone, l.Hours, l.Latitude, l.Longitude, l.Description, l.IsActive, l.ID).
		Scan(&l.CreatedAt)
	return notFound(err)
}

func (r *PostgresRepository) DeleteLocation(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM store_locations WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetLocationActive(id int, active bool) (int64, error) {
	result, err := r.DB.Exec("UPDATE store_locations SET is_active=$1 WHERE id=$2", active, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
