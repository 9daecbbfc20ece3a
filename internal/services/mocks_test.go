package services

import (
	"context"
	"errors"

	"corelabevents/internal/domain"
)

type mockInvitationRepository struct {
	existing   map[string]*domain.Invitation
	created    []*domain.Invitation
	createErr  error
	getErr     error
	listResult []*domain.Invitation
	listErr    error
}

func (m *mockInvitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, inv)
	if m.existing == nil {
		m.existing = map[string]*domain.Invitation{}
	}
	m.existing[inv.Email] = inv
	return nil
}

func (m *mockInvitationRepository) GetByEmail(ctx context.Context, email string) (*domain.Invitation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if inv, ok := m.existing[email]; ok {
		return inv, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockInvitationRepository) List(ctx context.Context) ([]*domain.Invitation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

type mockRegistrationRepository struct {
	existing    map[string]*domain.Registration // keyed email:eventSlug
	created     []*domain.Registration
	createErr   error
	listResult  []*domain.Registration
	listErr     error
	getCalls    int
	afterCreate *domain.Registration // returned by Get once createErr fired, for conflict re-fetch
}

func (m *mockRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, reg)
	return nil
}

func (m *mockRegistrationRepository) GetByEmailAndEvent(ctx context.Context, email, eventSlug string) (*domain.Registration, error) {
	m.getCalls++
	if reg, ok := m.existing[email+":"+eventSlug]; ok {
		return reg, nil
	}
	if m.afterCreate != nil && m.getCalls > 1 {
		return m.afterCreate, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepository) ListByEventSlug(ctx context.Context, eventSlug string) ([]*domain.Registration, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

type mockEmailService struct {
	invitations     []*domain.InvitationEmailData
	invitationFail  map[string]error // keyed by recipient email
	notices         []*domain.RegistrationNoticeEmailData
	noticeErr       error
	confirmations   []*domain.RegistrationConfirmationEmailData
	confirmationErr error
	contactMessages []*domain.ContactMessageEmailData
	contactErr      error
}

func (m *mockEmailService) SendInvitation(ctx context.Context, data *domain.InvitationEmailData) error {
	if err, ok := m.invitationFail[data.Email]; ok {
		return err
	}
	m.invitations = append(m.invitations, data)
	return nil
}

func (m *mockEmailService) SendRegistrationNotice(ctx context.Context, data *domain.RegistrationNoticeEmailData) error {
	if m.noticeErr != nil {
		return m.noticeErr
	}
	m.notices = append(m.notices, data)
	return nil
}

func (m *mockEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	if m.confirmationErr != nil {
		return m.confirmationErr
	}
	m.confirmations = append(m.confirmations, data)
	return nil
}

func (m *mockEmailService) SendContactMessage(ctx context.Context, data *domain.ContactMessageEmailData) error {
	if m.contactErr != nil {
		return m.contactErr
	}
	m.contactMessages = append(m.contactMessages, data)
	return nil
}

type mockSettingRepository struct {
	settings map[string]*domain.Setting
	getErr   error
	setErr   error
	sets     map[string]*string
}

func (m *mockSettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if s, ok := m.settings[key]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockSettingRepository) Set(ctx context.Context, key string, value *string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.sets == nil {
		m.sets = map[string]*string{}
	}
	m.sets[key] = value
	return nil
}

var errTransport = errors.New("transport unavailable")
