package domain

import "context"

// ContactInput is the contact form payload. Option fields (role, project
// type, funding, services, modalities) carry short keys that the email
// rendering maps to display labels.
type ContactInput struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Organization  string   `json:"organization" validate:"required"`
	Role          string   `json:"role,omitempty"`
	ProjectType   string   `json:"project_type,omitempty"`
	HasFunding    string   `json:"has_funding,omitempty"`
	FundingStatus string   `json:"funding_status,omitempty"`
	Services      []string `json:"services"`
	Modalities    []string `json:"modalities"`
	Subject       string   `json:"subject" validate:"required"`
	Message       string   `json:"message" validate:"required"`
}

// ContactService delivers contact form submissions to the site
// recipients.
type ContactService interface {
	Submit(ctx context.Context, input *ContactInput) error
}
