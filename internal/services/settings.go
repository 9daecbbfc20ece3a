package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"corelabevents/internal/domain"
)

// Keys for display-setting overrides.
const (
	SettingHeroImageURL = "HERO_IMAGE_URL"
)

const defaultHeroImageURL = "/assets/hero.jpg"

type settingsService struct {
	settingRepo domain.SettingRepository
	adminSecret string
	getenv      func(string) string
}

// NewSettingsService creates a SettingsService reading overrides from
// the setting store with environment fallback.
func NewSettingsService(settingRepo domain.SettingRepository, adminSecret string) domain.SettingsService {
	return &settingsService{settingRepo: settingRepo, adminSecret: adminSecret, getenv: os.Getenv}
}

func (s *settingsService) HeroImageURL(ctx context.Context) (string, error) {
	setting, err := s.settingRepo.Get(ctx, SettingHeroImageURL)
	if err == nil && setting.Value != nil && *setting.Value != "" {
		return *setting.Value, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("get setting %s: %w", SettingHeroImageURL, err)
	}
	if v := s.getenv(SettingHeroImageURL); v != "" {
		return v, nil
	}
	return defaultHeroImageURL, nil
}

func (s *settingsService) Set(ctx context.Context, secret, key string, value *string) error {
	if !secretMatches(s.adminSecret, secret) {
		return domain.ErrUnauthorized
	}
	if key == "" {
		return fmt.Errorf("%w: empty setting key", domain.ErrInvalidInput)
	}
	if err := s.settingRepo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}
