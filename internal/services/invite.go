package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"corelabevents/internal/domain"
)

type inviteService struct {
	invitationRepo   domain.InvitationRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	adminSecret      string
	eventSlug        string
	siteName         string
	sendDelay        time.Duration
}

// NewInviteService creates an InviteService. sendDelay is the pause
// between consecutive transport sends; pass 0 to disable (tests).
func NewInviteService(
	invitationRepo domain.InvitationRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	adminSecret, eventSlug, siteName string,
	sendDelay time.Duration,
) domain.InviteService {
	return &inviteService{
		invitationRepo:   invitationRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		adminSecret:      adminSecret,
		eventSlug:        eventSlug,
		siteName:         siteName,
		sendDelay:        sendDelay,
	}
}

func (s *inviteService) SendInvitations(ctx context.Context, rawEmails, secret string) (*domain.SendReport, error) {
	if !secretMatches(s.adminSecret, secret) {
		return nil, domain.ErrUnauthorized
	}

	recipients := domain.ParseRecipients(rawEmails)
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: no valid recipients", domain.ErrInvalidInput)
	}

	report := &domain.SendReport{Results: make([]domain.SendResult, 0, len(recipients))}
	for i, rec := range recipients {
		if i > 0 && s.sendDelay > 0 {
			time.Sleep(s.sendDelay)
		}
		report.Results = append(report.Results, s.sendOne(ctx, rec))
	}
	for _, res := range report.Results {
		switch {
		case res.AlreadySent:
			report.TotalSkipped++
		case res.Success:
			report.TotalSent++
		default:
			report.TotalFailed++
		}
	}
	return report, nil
}

// sendOne processes a single recipient. Failures are per-recipient: the
// batch keeps going.
func (s *inviteService) sendOne(ctx context.Context, rec domain.Recipient) domain.SendResult {
	email := domain.NormalizeEmail(rec.Email)
	result := domain.SendResult{Email: email, Name: rec.Name}

	if _, err := s.invitationRepo.GetByEmail(ctx, email); err == nil {
		result.AlreadySent = true
		result.Error = "invitation already sent"
		return result
	} else if !errors.Is(err, domain.ErrNotFound) {
		result.Error = fmt.Sprintf("check existing invitation: %v", err)
		return result
	}

	data := &domain.InvitationEmailData{
		Email:      email,
		Salutation: domain.Salutation(rec.Name, rec.Gender),
		SiteName:   s.siteName,
	}
	if err := s.emailService.SendInvitation(ctx, data); err != nil {
		result.Error = err.Error()
		return result
	}

	inv := domain.NewInvitation(email, rec.Name, time.Now())
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// A concurrent batch recorded this email between our lookup
			// and the insert. The invite went out either way.
			result.AlreadySent = true
			return result
		}
		result.Error = fmt.Sprintf("record invitation: %v", err)
		return result
	}

	result.Success = true
	return result
}

func (s *inviteService) ListInvitations(ctx context.Context, secret string) ([]*domain.InvitationWithStatus, error) {
	if !secretMatches(s.adminSecret, secret) {
		return nil, domain.ErrUnauthorized
	}

	invs, err := s.invitationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	regs, err := s.registrationRepo.ListByEventSlug(ctx, s.eventSlug)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	registered := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		registered[domain.NormalizeEmail(reg.Email)] = struct{}{}
	}

	out := make([]*domain.InvitationWithStatus, 0, len(invs))
	for _, inv := range invs {
		_, isReg := registered[domain.NormalizeEmail(inv.Email)]
		out = append(out, &domain.InvitationWithStatus{
			Invitation:   inv,
			IsRegistered: isReg,
		})
	}
	return out, nil
}
