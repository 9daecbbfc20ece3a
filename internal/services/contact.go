package services

import (
	"context"
	"fmt"

	"corelabevents/internal/domain"
	"corelabevents/internal/validate"
)

// Form option keys mapped to the French labels used in the forwarded
// email. Unknown keys pass through as-is.
var (
	roleLabels = map[string]string{
		"researcher": "Chercheur",
		"clinician":  "Clinicien",
		"industry":   "Industriel",
		"other":      "Autre",
	}
	projectTypeLabels = map[string]string{
		"academic":   "Académique",
		"industrial": "Industriel",
		"mixed":      "Mixte",
	}
	fundingLabels = map[string]string{
		"yes":       "Oui",
		"no":        "Non",
		"searching": "En recherche",
	}
	fundingStatusLabels = map[string]string{
		"obtained":  "Obtenu",
		"pending":   "En attente",
		"submitted": "Soumis",
	}
	serviceLabels = map[string]string{
		"database":     "Constitution de bases de données",
		"reading":      "Relecture centralisée",
		"groundtruth":  "Ground Truth / Annotations",
		"ai":           "Développement IA",
		"valorization": "Valorisation scientifique",
		"other":        "Autre",
	}
	modalityLabels = map[string]string{
		"mri":     "IRM",
		"ct":      "Scanner",
		"echo":    "Échographie",
		"ecg":     "ECG",
		"angio":   "Coronarographie",
		"nuclear": "Imagerie nucléaire",
		"other":   "Autre",
	}
)

type contactService struct {
	emailService domain.EmailService
	siteName     string
}

// NewContactService creates a ContactService.
func NewContactService(emailService domain.EmailService, siteName string) domain.ContactService {
	return &contactService{emailService: emailService, siteName: siteName}
}

func (s *contactService) Submit(ctx context.Context, input *domain.ContactInput) error {
	if input == nil {
		return fmt.Errorf("%w: missing payload", domain.ErrInvalidInput)
	}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	data := &domain.ContactMessageEmailData{
		Name:          input.Name,
		Email:         domain.NormalizeEmail(input.Email),
		Organization:  input.Organization,
		Role:          label(roleLabels, input.Role),
		ProjectType:   label(projectTypeLabels, input.ProjectType),
		HasFunding:    label(fundingLabels, input.HasFunding),
		FundingStatus: label(fundingStatusLabels, input.FundingStatus),
		Services:      labels(serviceLabels, input.Services),
		Modalities:    labels(modalityLabels, input.Modalities),
		Subject:       input.Subject,
		Message:       input.Message,
		SiteName:      s.siteName,
	}
	if err := s.emailService.SendContactMessage(ctx, data); err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}

func label(m map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if l, ok := m[key]; ok {
		return l
	}
	return key
}

func labels(m map[string]string, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, label(m, k))
	}
	return out
}
