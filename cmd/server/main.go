package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"corelabevents/config"
	"corelabevents/internal/adapters/assets"
	"corelabevents/internal/adapters/email"
	deliveryhttp "corelabevents/internal/delivery/http"
	"corelabevents/internal/delivery/http/controllers"
	"corelabevents/internal/delivery/http/middleware"
	"corelabevents/internal/repository/postgres"
	"corelabevents/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	invitationRepo := postgres.NewInvitationRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	settingRepo := postgres.NewSettingRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.ContactRecipients)
	inviteService := services.NewInviteService(
		invitationRepo, registrationRepo, emailService,
		cfg.AdminSecret, cfg.EventSlug, cfg.SiteName, cfg.InviteSendDelay,
	)
	registrationService := services.NewRegistrationService(
		registrationRepo, emailService, logger,
		cfg.AdminSecret, cfg.EventSlug, cfg.SiteName,
	)
	contactService := services.NewContactService(emailService, cfg.SiteName)
	settingsService := services.NewSettingsService(settingRepo, cfg.AdminSecret)

	assetLister := assets.NewFSLister(os.DirFS("public/assets"), "/assets", assets.Overrides{
		Labels: map[string]string{"logo_larib": "Logo Hôpital Lariboisière"},
		Links:  map[string]string{"logo_larib": "/lariboisiere"},
		Scales: map[string]float64{
			"logo_amiens": 0.9,
			"logo_HEGP":   1.2,
		},
	})

	router := deliveryhttp.NewRouter(
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewContactController(logger, contactService),
		controllers.NewAdminController(logger, inviteService, registrationService),
		controllers.NewAssetsController(logger, assetLister),
		controllers.NewSettingsController(logger, settingsService),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, router))
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
