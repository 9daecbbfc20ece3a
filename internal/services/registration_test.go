package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"corelabevents/internal/domain"
)

func newRegistrationService(regRepo *mockRegistrationRepository, emailSvc *mockEmailService) domain.RegistrationService {
	logger := slog.New(slog.DiscardHandler)
	return NewRegistrationService(regRepo, emailSvc, logger, testSecret, testSlug, testSite)
}

func validInput() *domain.RegistrationInput {
	return &domain.RegistrationInput{
		FirstName:   "Jean",
		LastName:    "Dupont",
		Email:       "J.Dupont@Hopital.FR",
		Profession:  "Cardiologue",
		Institution: "CHU X",
	}
}

func TestRegistrationService_Register_New(t *testing.T) {
	regRepo := &mockRegistrationRepository{}
	emailSvc := &mockEmailService{}
	svc := newRegistrationService(regRepo, emailSvc)

	reg, created, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "j.dupont@hopital.fr", reg.Email)
	require.Equal(t, testSlug, reg.EventSlug)
	require.NotEmpty(t, reg.ID)

	require.Len(t, regRepo.created, 1)
	require.Len(t, emailSvc.notices, 1)
	require.Len(t, emailSvc.confirmations, 1)
	require.Equal(t, "j.dupont@hopital.fr", emailSvc.notices[0].Email)
}

func TestRegistrationService_Register_ValidationFailsBeforeSideEffects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RegistrationInput)
	}{
		{"short first name", func(in *domain.RegistrationInput) { in.FirstName = "J" }},
		{"short last name", func(in *domain.RegistrationInput) { in.LastName = "D" }},
		{"invalid email", func(in *domain.RegistrationInput) { in.Email = "not-an-email" }},
		{"empty profession", func(in *domain.RegistrationInput) { in.Profession = "" }},
		{"short institution", func(in *domain.RegistrationInput) { in.Institution = "X" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regRepo := &mockRegistrationRepository{}
			emailSvc := &mockEmailService{}
			svc := newRegistrationService(regRepo, emailSvc)

			input := validInput()
			tt.mutate(input)
			_, _, err := svc.Register(context.Background(), input)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			require.Empty(t, regRepo.created)
			require.Empty(t, emailSvc.notices)
		})
	}
}

func TestRegistrationService_Register_DuplicateIsNormalOutcome(t *testing.T) {
	existing := &domain.Registration{ID: "r1", Email: "j.dupont@hopital.fr", EventSlug: testSlug}
	regRepo := &mockRegistrationRepository{
		existing: map[string]*domain.Registration{
			"j.dupont@hopital.fr:" + testSlug: existing,
		},
	}
	emailSvc := &mockEmailService{}
	svc := newRegistrationService(regRepo, emailSvc)

	// Same address with different case must normalize to the same row.
	reg, created, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, existing, reg)

	require.Empty(t, regRepo.created)
	require.Empty(t, emailSvc.notices)
	require.Empty(t, emailSvc.confirmations)
}

func TestRegistrationService_Register_ConflictRace(t *testing.T) {
	winner := &domain.Registration{ID: "r1", Email: "j.dupont@hopital.fr", EventSlug: testSlug}
	regRepo := &mockRegistrationRepository{
		createErr:   domain.ErrConflict,
		afterCreate: winner,
	}
	emailSvc := &mockEmailService{}
	svc := newRegistrationService(regRepo, emailSvc)

	reg, created, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, winner, reg)
	require.Empty(t, emailSvc.notices)
}

func TestRegistrationService_Register_NoticeFailureIsFatal(t *testing.T) {
	regRepo := &mockRegistrationRepository{}
	emailSvc := &mockEmailService{noticeErr: errTransport}
	svc := newRegistrationService(regRepo, emailSvc)

	reg, created, err := svc.Register(context.Background(), validInput())
	require.Error(t, err)
	require.True(t, created)
	require.NotNil(t, reg)
	// The record stays persisted even though the operation failed.
	require.Len(t, regRepo.created, 1)
	require.Empty(t, emailSvc.confirmations)
}

func TestRegistrationService_Register_ConfirmationFailureIsNot(t *testing.T) {
	regRepo := &mockRegistrationRepository{}
	emailSvc := &mockEmailService{confirmationErr: errTransport}
	svc := newRegistrationService(regRepo, emailSvc)

	_, created, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, emailSvc.notices, 1)
}

func TestRegistrationService_ListRegistrations(t *testing.T) {
	regRepo := &mockRegistrationRepository{
		listResult: []*domain.Registration{{ID: "r1"}, {ID: "r2"}},
	}
	svc := newRegistrationService(regRepo, &mockEmailService{})

	regs, err := svc.ListRegistrations(context.Background(), testSecret)
	require.NoError(t, err)
	require.Len(t, regs, 2)

	_, err = svc.ListRegistrations(context.Background(), "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
