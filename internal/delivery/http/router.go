package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"corelabevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	registrationController *controllers.RegistrationController,
	contactController *controllers.ContactController,
	adminController *controllers.AdminController,
	assetsController *controllers.AssetsController,
	settingsController *controllers.SettingsController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Public forms
	mux.HandleFunc("POST /api/registrations", registrationController.Register)
	mux.HandleFunc("POST /api/contact", contactController.Submit)

	// Admin (shared-secret)
	mux.HandleFunc("POST /api/admin/invitations", adminController.SendInvitations)
	mux.HandleFunc("GET /api/admin/invitations", adminController.ListInvitations)
	mux.HandleFunc("GET /api/admin/registrations", adminController.ListRegistrations)
	mux.HandleFunc("POST /api/admin/settings", settingsController.UpdateSetting)

	// Display assets and settings
	mux.HandleFunc("GET /api/assets/{category}", assetsController.List)
	mux.HandleFunc("GET /api/settings/hero-image", settingsController.GetHeroImage)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
