package domain

import "context"

// Setting is a generic key/value row used for optional display
// overrides (e.g. the hero image URL).
type Setting struct {
	Key   string  `json:"key"`
	Value *string `json:"value"`
}

// SettingRepository defines storage operations for settings.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	Set(ctx context.Context, key string, value *string) error
}

// SettingsService reads display settings with fallbacks and lets admins
// override them.
type SettingsService interface {
	// HeroImageURL returns the hero image override: the stored setting
	// if present, else the environment value, else the built-in default.
	HeroImageURL(ctx context.Context) (string, error)
	// Set upserts a setting. Guarded by the admin secret.
	Set(ctx context.Context, secret, key string, value *string) error
}
