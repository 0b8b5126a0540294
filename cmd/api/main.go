// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/config"
	"github.com/dangerclosesec/sarpa/internal/database"
	"github.com/dangerclosesec/sarpa/internal/email"
	"github.com/dangerclosesec/sarpa/internal/email/mailer"
	"github.com/dangerclosesec/sarpa/internal/handler"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/dangerclosesec/sarpa/internal/service"
	"github.com/dangerclosesec/sarpa/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}
	defer database.Close(db)

	// Initialize repositories
	tx := repository.NewTransactor(db)
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	partRepo := repository.NewPartRepository(db)
	pmRepo := repository.NewPreventiveMaintenanceRepository(db)
	woRepo := repository.NewWorkOrderRepository(db)

	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
	if err != nil {
		return fmt.Errorf("setting up email: %w", err)
	}
	notifier := mailer.NewNotifier(emailService, companyRepo, cfg.BaseURL)

	presigner, err := storage.NewPresigner(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setting up object storage: %w", err)
	}
	if !presigner.Enabled() {
		logger.Warn("object storage not configured, uploads are disabled")
	}

	// Initialize services
	authService := service.NewAuthService(tx, companyRepo, userRepo, tokenRepo, tokenManager, notifier)
	companyService := service.NewCompanyService(companyRepo, userRepo)
	assetService := service.NewAssetService(assetRepo, userRepo)
	partService := service.NewPartService(tx, partRepo, assetRepo)
	pmService := service.NewPreventiveMaintenanceService(tx, pmRepo, woRepo, assetRepo, userRepo, notifier)
	woService := service.NewWorkOrderService(tx, woRepo, pmRepo, assetRepo, userRepo, notifier)

	router := handler.NewRouter(handler.RouterOptions{
		Logger:       logger,
		TokenManager: tokenManager,
	}, handler.Handlers{
		Auth:                  handler.NewAuthHandler(authService, cfg.JWT.SecureCookies),
		Company:               handler.NewCompanyHandler(companyService),
		Asset:                 handler.NewAssetHandler(assetService),
		Part:                  handler.NewPartHandler(partService),
		PreventiveMaintenance: handler.NewPreventiveMaintenanceHandler(pmService),
		WorkOrder:             handler.NewWorkOrderHandler(woService),
		Upload:                handler.NewUploadHandler(presigner),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	})

	var scheduler *service.MaintenanceScheduler
	if cfg.Scheduler.Enabled {
		scheduler = service.NewMaintenanceScheduler(tx, pmRepo, woRepo, userRepo, notifier, cfg.Scheduler.Interval, logger)
		scheduler.SetBatchSize(cfg.Scheduler.BatchSize)
		scheduler.Start()
		logger.Info("maintenance scheduler started", "interval", cfg.Scheduler.Interval)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if scheduler != nil {
			scheduler.Stop()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)

		if scheduler != nil {
			scheduler.Stop()
		}

		if err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
