package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"corelabevents/internal/domain"
)

const testSlug = "scientific-day-2026"

func testRegistration(createdAt time.Time) *domain.Registration {
	return &domain.Registration{
		ID:          "reg-1",
		FirstName:   "Jean",
		LastName:    "Dupont",
		Email:       "j.dupont@hopital.fr",
		Profession:  "Cardiologue",
		Institution: "CHU X",
		EventSlug:   testSlug,
		CreatedAt:   createdAt,
	}
}

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO registrations`).
					WithArgs("reg-1", "Jean", "Dupont", "j.dupont@hopital.fr", "Cardiologue", "CHU X", testSlug, createdAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email+event maps to conflict",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO registrations`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Create(ctx, testRegistration(createdAt))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_GetByEmailAndEvent(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, first_name, last_name, email, profession, institution, event_slug, created_at`).
			WithArgs("j.dupont@hopital.fr", testSlug).
			WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "profession", "institution", "event_slug", "created_at"}).
				AddRow("reg-1", "Jean", "Dupont", "j.dupont@hopital.fr", "Cardiologue", "CHU X", testSlug, createdAt))

		repo := NewRegistrationRepository(db)
		reg, err := repo.GetByEmailAndEvent(ctx, "j.dupont@hopital.fr", testSlug)
		require.NoError(t, err)
		require.Equal(t, "reg-1", reg.ID)
		require.Equal(t, "Cardiologue", reg.Profession)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, first_name, last_name, email`).
			WithArgs("nobody@chu.fr", testSlug).
			WillReturnError(sql.ErrNoRows)

		repo := NewRegistrationRepository(db)
		_, err = repo.GetByEmailAndEvent(ctx, "nobody@chu.fr", testSlug)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRegistrationRepository_ListByEventSlug(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, profession, institution, event_slug, created_at`).
		WithArgs(testSlug).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "profession", "institution", "event_slug", "created_at"}).
			AddRow("reg-2", "Marie", "Martin", "marie.martin@chu.fr", "Radiologue", "CHU Lille", testSlug, createdAt.Add(time.Hour)).
			AddRow("reg-1", "Jean", "Dupont", "j.dupont@hopital.fr", "Cardiologue", "CHU X", testSlug, createdAt))

	repo := NewRegistrationRepository(db)
	regs, err := repo.ListByEventSlug(ctx, testSlug)
	require.NoError(t, err)
	require.Len(t, regs, 2)
	require.Equal(t, "reg-2", regs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
