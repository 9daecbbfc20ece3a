package services

import (
	"context"
	"fmt"
	"log"

	"corelabevents/internal/domain"
)

type emailService struct {
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	siteRecipients []string
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. siteRecipients receive organizer notices and
// contact messages.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, siteRecipients []string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, siteRecipients: siteRecipients}
}

// SendInvitation sends a personalized event invitation using the "invitation" template.
func (s *emailService) SendInvitation(ctx context.Context, data *domain.InvitationEmailData) error {
	if data == nil {
		return fmt.Errorf("invitation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("invitation", data)
	if err != nil {
		return fmt.Errorf("failed to render invitation template: %w", err)
	}
	if err := s.mailer.Send([]string{data.Email}, "", subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	log.Printf("[EMAIL] Invitation sent to %s", data.Email)
	return nil
}

// SendRegistrationNotice notifies the organizers of a new registration.
// Reply-to is set to the registrant so organizers can answer directly.
func (s *emailService) SendRegistrationNotice(ctx context.Context, data *domain.RegistrationNoticeEmailData) error {
	if data == nil {
		return fmt.Errorf("registration notice data is nil")
	}
	if len(s.siteRecipients) == 0 {
		return fmt.Errorf("no organizer recipients configured")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_notice", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_notice template: %w", err)
	}
	if err := s.mailer.Send(s.siteRecipients, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration notice: %w", err)
	}
	log.Printf("[EMAIL] Registration notice sent for %s", data.Email)
	return nil
}

// SendRegistrationConfirmation sends the event logistics email to the registrant.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_confirmation template: %w", err)
	}
	if err := s.mailer.Send([]string{data.Email}, "", subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration confirmation: %w", err)
	}
	log.Printf("[EMAIL] Registration confirmation sent to %s", data.Email)
	return nil
}

// SendContactMessage forwards a contact form submission to the site
// recipients with reply-to set to the submitter.
func (s *emailService) SendContactMessage(ctx context.Context, data *domain.ContactMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("contact message data is nil")
	}
	if len(s.siteRecipients) == 0 {
		return fmt.Errorf("no contact recipients configured")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("contact_message", data)
	if err != nil {
		return fmt.Errorf("failed to render contact_message template: %w", err)
	}
	if err := s.mailer.Send(s.siteRecipients, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	log.Printf("[EMAIL] Contact message forwarded for %s", data.Email)
	return nil
}
