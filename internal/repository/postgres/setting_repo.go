package postgres

import (
	"context"
	"database/sql"
	"errors"

	"corelabevents/internal/domain"
)

type settingRepository struct {
	DB *sql.DB
}

func NewSettingRepository(db *sql.DB) domain.SettingRepository {
	return &settingRepository{
		DB: db,
	}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query := `
		SELECT key, value
		FROM settings
		WHERE key = $1
	`
	s := &domain.Setting{}
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *settingRepository) Set(ctx context.Context, key string, value *string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.DB.ExecContext(ctx, query, key, value)
	return err
}
