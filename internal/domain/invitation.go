package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Invitation records that an email invite for the event was sent to a
// given address. Rows are append-only: created after a successful send,
// never updated or deleted.
// swagger:model Invitation
type Invitation struct {
	ID     string    `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	SentAt time.Time `json:"sent_at"`
}

// NewInvitation creates an Invitation with a fresh ID. Email must already
// be normalized by the caller.
func NewInvitation(email, name string, sentAt time.Time) *Invitation {
	return &Invitation{
		ID:     uuid.NewString(),
		Email:  email,
		Name:   name,
		SentAt: sentAt,
	}
}

// InvitationRepository defines storage operations for invitations.
// Create must return ErrConflict when the normalized email is already
// present, so that concurrent duplicate sends are detected at the
// database rather than by the pre-send lookup alone.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByEmail(ctx context.Context, email string) (*Invitation, error)
	List(ctx context.Context) ([]*Invitation, error)
}

// InvitationWithStatus is an invitation row cross-referenced against the
// registration store for conversion reporting.
type InvitationWithStatus struct {
	*Invitation
	IsRegistered bool `json:"is_registered"`
}

// SendResult reports the outcome for a single recipient of an
// invitation batch.
type SendResult struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	Success     bool   `json:"success"`
	AlreadySent bool   `json:"already_sent,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SendReport aggregates the per-recipient outcomes of an invitation
// batch. TotalSent+TotalFailed+TotalSkipped equals the number of parsed
// recipients; partial completion is expected and reported, not an error.
type SendReport struct {
	TotalSent    int          `json:"total_sent"`
	TotalFailed  int          `json:"total_failed"`
	TotalSkipped int          `json:"total_skipped"`
	Results      []SendResult `json:"results"`
}

// InviteService defines the admin-facing invitation operations.
type InviteService interface {
	// SendInvitations parses rawEmails (one recipient per line), sends a
	// personalized invite to each not-yet-invited address, and records
	// successful sends. A wrong secret fails the whole batch before any
	// processing.
	SendInvitations(ctx context.Context, rawEmails, secret string) (*SendReport, error)
	// ListInvitations returns all invitations with their registration
	// cross-reference, newest first.
	ListInvitations(ctx context.Context, secret string) ([]*InvitationWithStatus, error)
}
