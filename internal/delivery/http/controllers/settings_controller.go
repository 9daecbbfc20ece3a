package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"corelabevents/internal/delivery/http/helpers"
	"corelabevents/internal/domain"
)

type SettingsController struct {
	Logger  *slog.Logger
	Service domain.SettingsService
}

func NewSettingsController(logger *slog.Logger, svc domain.SettingsService) *SettingsController {
	return &SettingsController{
		Logger:  logger,
		Service: svc,
	}
}

// GetHeroImage godoc
// @Summary Get the hero image URL
// @Description Returns the hero image override from the setting store, falling back to the environment value and then the built-in default.
// @Tags settings
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.url is the hero image URL"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/settings/hero-image [get]
func (c *SettingsController) GetHeroImage(w http.ResponseWriter, r *http.Request) {
	url, err := c.Service.HeroImageURL(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"url": url})
}

// UpdateSettingRequest is the request body for POST /api/admin/settings.
type UpdateSettingRequest struct {
	Key    string  `json:"key"`
	Value  *string `json:"value"`
	Secret string  `json:"secret"`
}

// UpdateSetting godoc
// @Summary Upsert a display setting
// @Description Writes a setting key/value override (value null clears it). Guarded by the admin secret.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.UpdateSettingRequest true "Setting and admin secret"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/settings [post]
func (c *SettingsController) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}

	if err := c.Service.Set(r.Context(), req.Secret, req.Key, req.Value); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"success": true})
}
