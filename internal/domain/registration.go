package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Registration records that a person signed up for a specific event.
// Unique per (email, event_slug); email is stored normalized.
// swagger:model Registration
type Registration struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Profession  string    `json:"profession"`
	Institution string    `json:"institution"`
	EventSlug   string    `json:"event_slug"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRegistration creates a Registration with a fresh ID. Email must
// already be normalized by the caller.
func NewRegistration(firstName, lastName, email, profession, institution, eventSlug string, createdAt time.Time) *Registration {
	return &Registration{
		ID:          uuid.NewString(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Profession:  profession,
		Institution: institution,
		EventSlug:   eventSlug,
		CreatedAt:   createdAt,
	}
}

// RegistrationRepository defines storage operations for event
// registrations. Create must return ErrConflict when (email, event_slug)
// is already present.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByEmailAndEvent(ctx context.Context, email, eventSlug string) (*Registration, error)
	ListByEventSlug(ctx context.Context, eventSlug string) ([]*Registration, error)
}

// RegistrationInput is the visitor-submitted registration payload.
type RegistrationInput struct {
	FirstName   string `json:"first_name" validate:"required,min=2"`
	LastName    string `json:"last_name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Profession  string `json:"profession" validate:"required"`
	Institution string `json:"institution" validate:"required,min=2"`
}

// RegistrationService defines registration operations.
type RegistrationService interface {
	// Register stores a registration and notifies the organizers.
	// Returns (reg, created, err): created is false when the email was
	// already registered for the event, which is a normal outcome, not
	// an error.
	Register(ctx context.Context, input *RegistrationInput) (*Registration, bool, error)
	// ListRegistrations returns all registrations for the configured
	// event, newest first. Guarded by the admin secret.
	ListRegistrations(ctx context.Context, secret string) ([]*Registration, error)
}
