package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"corelabevents/internal/domain"
	"corelabevents/internal/validate"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	logger           *slog.Logger
	adminSecret      string
	eventSlug        string
	siteName         string
}

// NewRegistrationService creates a RegistrationService bound to the
// configured event.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	adminSecret, eventSlug, siteName string,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		emailService:     emailService,
		logger:           logger,
		adminSecret:      adminSecret,
		eventSlug:        eventSlug,
		siteName:         siteName,
	}
}

func (s *registrationService) Register(ctx context.Context, input *domain.RegistrationInput) (*domain.Registration, bool, error) {
	if input == nil {
		return nil, false, fmt.Errorf("%w: missing payload", domain.ErrInvalidInput)
	}
	if err := validate.Struct(input); err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	email := domain.NormalizeEmail(input.Email)

	// Resubmission with the same address is a normal outcome, not an
	// error; no second write, no second email.
	if existing, err := s.registrationRepo.GetByEmailAndEvent(ctx, email, s.eventSlug); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get registration: %w", err)
	}

	reg := domain.NewRegistration(
		strings.TrimSpace(input.FirstName),
		strings.TrimSpace(input.LastName),
		email,
		strings.TrimSpace(input.Profession),
		strings.TrimSpace(input.Institution),
		s.eventSlug,
		time.Now(),
	)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost the race against a concurrent submission for the
			// same address; the unique constraint kept one row.
			existing, getErr := s.registrationRepo.GetByEmailAndEvent(ctx, email, s.eventSlug)
			if getErr != nil {
				return nil, false, fmt.Errorf("get registration after conflict: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create registration: %w", err)
	}

	notice := &domain.RegistrationNoticeEmailData{
		FirstName:   reg.FirstName,
		LastName:    reg.LastName,
		Email:       reg.Email,
		Profession:  reg.Profession,
		Institution: reg.Institution,
		SubmittedAt: reg.CreatedAt.Format("02/01/2006 15:04"),
		SiteName:    s.siteName,
	}
	// The organizer notice is fatal to the operation while the record
	// stays persisted; the confirmation below is best-effort.
	if err := s.emailService.SendRegistrationNotice(ctx, notice); err != nil {
		return reg, true, fmt.Errorf("send registration notice: %w", err)
	}

	confirmation := &domain.RegistrationConfirmationEmailData{
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
		SiteName:  s.siteName,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, confirmation); err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "email", reg.Email, "err", err)
	}

	return reg, true, nil
}

func (s *registrationService) ListRegistrations(ctx context.Context, secret string) ([]*domain.Registration, error) {
	if !secretMatches(s.adminSecret, secret) {
		return nil, domain.ErrUnauthorized
	}
	regs, err := s.registrationRepo.ListByEventSlug(ctx, s.eventSlug)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
