package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"corelabevents/internal/delivery/http/helpers"
	"corelabevents/internal/domain"
)

const exportTimeLayout = "02/01/2006 15:04"

type AdminController struct {
	Logger          *slog.Logger
	InviteService   domain.InviteService
	RegistrationSvc domain.RegistrationService
}

func NewAdminController(logger *slog.Logger, inviteSvc domain.InviteService, regSvc domain.RegistrationService) *AdminController {
	return &AdminController{
		Logger:          logger,
		InviteService:   inviteSvc,
		RegistrationSvc: regSvc,
	}
}

// SendInvitationsRequest is the request body for POST /api/admin/invitations.
type SendInvitationsRequest struct {
	Emails string `json:"emails"`
	Secret string `json:"secret"`
}

// SendInvitations godoc
// @Summary Send event invitations
// @Description Parses the free-text recipient list (one per line) and sends a personalized invite to each address not invited before. Already-invited addresses are skipped; transport failures are per-recipient.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body controllers.SendInvitationsRequest true "Recipients and admin secret"
// @Success 200 {object} helpers.APIResponse "data is the batch report"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/invitations [post]
func (c *AdminController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	var req SendInvitationsRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}

	report, err := c.InviteService.SendInvitations(r.Context(), req.Emails, req.Secret)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, report)
}

// ListInvitations godoc
// @Summary Export invitations
// @Description Lists all invitations with a computed is_registered flag. format=json returns the envelope; format=csv (default) streams a semicolon-delimited UTF-8 CSV.
// @Tags admin
// @Produce json
// @Produce text/csv
// @Param secret query string true "Admin secret"
// @Param format query string false "csv (default) or json"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/invitations [get]
func (c *AdminController) ListInvitations(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("secret")
	format := r.URL.Query().Get("format")

	invs, err := c.InviteService.ListInvitations(r.Context(), secret)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}

	if format == "json" {
		helpers.WriteJSONSuccess(w, http.StatusOK, invs)
		return
	}

	headers := []string{"Email", "Nom", "Date d'envoi", "Inscrit"}
	rows := make([][]string, 0, len(invs))
	for _, inv := range invs {
		registered := "non"
		if inv.IsRegistered {
			registered = "oui"
		}
		rows = append(rows, []string{
			inv.Email,
			inv.Name,
			inv.SentAt.Format(exportTimeLayout),
			registered,
		})
	}
	filename := "invitations-" + time.Now().Format("2006-01-02") + ".csv"
	if err := helpers.WriteCSV(w, filename, headers, rows); err != nil {
		c.Logger.ErrorContext(r.Context(), "csv export failed", "path", r.URL.Path, "err", err)
	}
}

// ListRegistrations godoc
// @Summary Export registrations
// @Description Lists all registrations for the configured event. format=json returns the envelope; format=csv (default) streams a semicolon-delimited UTF-8 CSV.
// @Tags admin
// @Produce json
// @Produce text/csv
// @Param secret query string true "Admin secret"
// @Param format query string false "csv (default) or json"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/registrations [get]
func (c *AdminController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("secret")
	format := r.URL.Query().Get("format")

	regs, err := c.RegistrationSvc.ListRegistrations(r.Context(), secret)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}

	if format == "json" {
		helpers.WriteJSONSuccess(w, http.StatusOK, regs)
		return
	}

	headers := []string{"Prénom", "Nom", "Email", "Profession", "Institution", "Date d'inscription"}
	rows := make([][]string, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, []string{
			reg.FirstName,
			reg.LastName,
			reg.Email,
			reg.Profession,
			reg.Institution,
			reg.CreatedAt.Format(exportTimeLayout),
		})
	}
	filename := "inscriptions-" + time.Now().Format("2006-01-02") + ".csv"
	if err := helpers.WriteCSV(w, filename, headers, rows); err != nil {
		c.Logger.ErrorContext(r.Context(), "csv export failed", "path", r.URL.Path, "err", err)
	}
}

func (c *AdminController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
