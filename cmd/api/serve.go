package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"weddinginvites/config"
	_ "weddinginvites/docs"
	"weddinginvites/internal/adapters/auth"
	"weddinginvites/internal/adapters/email"
	"weddinginvites/internal/adapters/gemini"
	httpdelivery "weddinginvites/internal/delivery/http"
	"weddinginvites/internal/delivery/http/controllers"
	"weddinginvites/internal/repository/postgres"
	"weddinginvites/internal/services"
	"weddinginvites/internal/tracing"
)

const (
	deliveryTimeout = time.Minute
	shutdownTimeout = 15 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the invitation dispatcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := config.NewLogger(cfg.Environment)
			slog.SetDefault(logger)
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func openDB(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", "err", err)
		}
	}()

	db, err := openDB(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	// Repositories
	guestRepo := postgres.NewGuestRepository(db)
	userRepo := postgres.NewUserRepository(db)
	dispatchLogRepo := postgres.NewDispatchLogRepository(db)

	// Adapters
	generator := gemini.NewClient(gemini.Config{
		APIKey:     cfg.Generation.APIKey,
		Model:      cfg.Generation.Model,
		BaseURL:    cfg.Generation.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Generation.Timeout},
		Logger:     logger,
	})
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	// Dispatcher
	deliverer := services.NewInvitationDeliverer(mailer, email.NewTemplateRenderer(), cfg.RSVPFormURL, logger)
	dispatcher := services.NewDispatcher(deliverer, dispatchLogRepo, services.DispatcherConfig{
		DeliveryTimeout: deliveryTimeout,
		Logger:          logger,
	})
	dispatchCtx, stopDispatcher := context.WithCancel(context.Background())
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Run(dispatchCtx)
	}()

	// Services
	timeout := cfg.ContextTimeout
	guestService := services.NewGuestService(guestRepo, logger, timeout)
	invitationService := services.NewInvitationService(guestRepo, generator, cfg.Generation.Concurrency, logger, timeout)
	programmeService := services.NewProgrammeService(guestRepo, generator, logger, timeout)
	dispatchService := services.NewDispatchService(guestRepo, dispatcher, deliverer, logger, timeout)
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry, timeout)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:       controllers.NewAuthController(logger, authService),
		Guest:      controllers.NewGuestController(logger, guestService),
		Invitation: controllers.NewInvitationController(logger, invitationService, dispatchService),
		Programme:  controllers.NewProgrammeController(logger, programmeService),
		Dispatch:   controllers.NewDispatchController(logger, dispatchService),
		Health:     controllers.NewHealthController(logger, db),
	}, verifier, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.NewHandler(mux, logger, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "email_provider", cfg.Email.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		if err != nil {
			stopDispatcher()
			<-dispatcherDone
			return fmt.Errorf("listen: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}

	// pending jobs are dropped; deliveries already firing are allowed to finish
	stopDispatcher()
	<-dispatcherDone
	dispatcher.Wait()
	logger.Info("server stopped")
	return nil
}
