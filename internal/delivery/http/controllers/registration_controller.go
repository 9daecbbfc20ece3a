package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"corelabevents/internal/delivery/http/helpers"
	"corelabevents/internal/domain"
)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterResponse is the data object for POST /api/registrations. It
// carries flags only: the endpoint is unauthenticated, so the stored
// row is never echoed back.
type RegisterResponse struct {
	Success           bool `json:"success"`
	AlreadyRegistered bool `json:"already_registered"`
}

// Register godoc
// @Summary Register for the event
// @Description Stores an event registration and notifies the organizers. Idempotent per email: returns 201 on a new registration, 200 with already_registered=true when the address is already registered.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body domain.RegistrationInput true "Registration payload"
// @Success 200 {object} helpers.APIResponse "Already registered"
// @Success 201 {object} helpers.APIResponse "New registration created"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.RegistrationInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}

	_, created, err := c.Service.Register(r.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	resp := RegisterResponse{Success: true, AlreadyRegistered: !created}
	if created {
		helpers.WriteJSONSuccess(w, http.StatusCreated, resp)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}
