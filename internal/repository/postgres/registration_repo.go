package postgres

import (
	"context"
	"database/sql"
	"errors"

	"corelabevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (id, first_name, last_name, email, profession, institution, event_slug, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.FirstName, reg.LastName, reg.Email,
		reg.Profession, reg.Institution, reg.EventSlug, reg.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByEmailAndEvent(ctx context.Context, email, eventSlug string) (*domain.Registration, error) {
	query := `
		SELECT id, first_name, last_name, email, profession, institution, event_slug, created_at
		FROM registrations
		WHERE email = $1 AND event_slug = $2
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, email, eventSlug).
		Scan(&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email,
			&reg.Profession, &reg.Institution, &reg.EventSlug, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventSlug(ctx context.Context, eventSlug string) ([]*domain.Registration, error) {
	query := `
		SELECT id, first_name, last_name, email, profession, institution, event_slug, created_at
		FROM registrations
		WHERE event_slug = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.FirstName, &reg.LastName, &reg.Email,
			&reg.Profession, &reg.Institution, &reg.EventSlug, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}
