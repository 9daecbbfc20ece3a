package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
// replyTo may be empty.
type Mailer interface {
	Send(to []string, replyTo, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// InvitationEmailData holds data for the personalized event invitation.
type InvitationEmailData struct {
	Email      string
	Salutation string
	SiteName   string
}

// RegistrationNoticeEmailData holds data for the organizer notification
// sent on each new registration.
type RegistrationNoticeEmailData struct {
	FirstName   string
	LastName    string
	Email       string
	Profession  string
	Institution string
	SubmittedAt string
	SiteName    string
}

// RegistrationConfirmationEmailData holds data for the confirmation sent
// to the registrant.
type RegistrationConfirmationEmailData struct {
	FirstName string
	LastName  string
	Email     string
	SiteName  string
}

// ContactMessageEmailData holds data for the contact form message
// forwarded to the site recipients. Option fields carry display labels,
// already mapped from their form keys.
type ContactMessageEmailData struct {
	Name          string
	Email         string
	Organization  string
	Role          string
	ProjectType   string
	HasFunding    string
	FundingStatus string
	Services      []string
	Modalities    []string
	Subject       string
	Message       string
	SiteName      string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvitation(ctx context.Context, data *InvitationEmailData) error
	SendRegistrationNotice(ctx context.Context, data *RegistrationNoticeEmailData) error
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationEmailData) error
	SendContactMessage(ctx context.Context, data *ContactMessageEmailData) error
}
