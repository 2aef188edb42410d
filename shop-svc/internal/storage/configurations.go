package storage

import (
	"alianza-shop/shop-svc/internal/domain"
)

func (r *PostgresRepository) ListConfigurations() ([]domain.ConfigEntry, error) {
	rows, err := r.DB.Query(`
		SELECT key, COALESCE(value, ''), COALESCE(description, ''), updated_at
		FROM system_configurations
		ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.ConfigEntry{}
	for rows.Next() {
		var e domain.ConfigEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.Description, &e.UpdatedAt); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) UpsertConfiguration(e *domain.ConfigEntry) error {
	return r.DB.QueryRow(`
		INSERT INTO system_configurations (key, value, description, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			description = COALESCE(EXCLUDED.description, system_configurations.description),
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at`,
		e.Key, e.Value, e.Description,
	).Scan(&e.UpdatedAt)
}

func (r *PostgresRepository) DeleteConfiguration(key string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM system_configurations WHERE key=$1", key)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) GetAdminByUsername(username string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	err := r.DB.QueryRow(`
		SELECT id, username, COALESCE(email, ''), password_hash
		FROM admin_users
		WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PostgresRepository) UpsertAdmin(u *domain.AdminUser) error {
	return r.DB.QueryRow(`
		INSERT INTO admin_users (username, email, password_hash)
		VALUES ($1, NULLIF($2, ''), $3)
		ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email, password_hash = EXCLUDED.password_hash
		RETURNING id`,
		u.Username, u.Email, u.PasswordHash,
	).Scan(&u.ID)
}
