package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"corelabevents/internal/delivery/http/helpers"
	"corelabevents/internal/domain"
)

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit the contact form
// @Description Validates the contact payload and forwards it by email to the site recipients with reply-to set to the submitter.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body domain.ContactInput true "Contact payload"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var input domain.ContactInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}

	if err := c.Service.Submit(r.Context(), &input); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"success": true})
}
