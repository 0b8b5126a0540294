package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/sarpa/internal/auth"
	"github.com/dangerclosesec/sarpa/internal/config"
	"github.com/dangerclosesec/sarpa/internal/database"
	"github.com/dangerclosesec/sarpa/internal/email"
	"github.com/dangerclosesec/sarpa/internal/email/mailer"
	"github.com/dangerclosesec/sarpa/internal/migration"
	"github.com/dangerclosesec/sarpa/internal/repository"
	"github.com/dangerclosesec/sarpa/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

var (
	dbConnString string
	verbose      bool

	dryRun    bool
	batchSize int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to the DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	sweepCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what the sweep would do without writing")
	sweepCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Schedules loaded per page (defaults to SCHEDULER_BATCH_SIZE)")

	tokensCmd.AddCommand(tokensPruneCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "sarpactl",
	Short: "sarpactl manages a Sarpa CMMS deployment",
	Long:  `sarpactl applies schema migrations and runs maintenance jobs against a Sarpa CMMS database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openSQL(cfg)
		defer db.Close()

		migrator, err := migration.NewMigrator(db)
		if err != nil {
			log.Fatalf("Failed to load migrations: %v", err)
		}

		applied, err := migrator.Up()
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}

		if len(applied) == 0 {
			fmt.Println("Schema is up to date")
		}
		for _, m := range applied {
			fmt.Printf("Applied %04d_%s\n", m.Version, m.Name)
		}

		version, err := migrator.CurrentVersion()
		if err != nil {
			log.Fatalf("Failed to get current version: %v", err)
		}
		fmt.Printf("Current version: %d\n", version)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openSQL(cfg)
		defer db.Close()

		migrator, err := migration.NewMigrator(db)
		if err != nil {
			log.Fatalf("Failed to load migrations: %v", err)
		}
		if err := migrator.InitializeSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		applied, err := migrator.Applied()
		if err != nil {
			log.Fatalf("Failed to read applied migrations: %v", err)
		}
		current := 0
		for _, m := range applied {
			fmt.Printf("  applied  %04d_%s  %s\n", m.Version, m.Name, m.AppliedAt.Format(time.RFC3339))
			current = m.Version
		}
		for _, m := range migrator.Pending(current) {
			fmt.Printf("  pending  %04d_%s\n", m.Version, m.Name)
		}
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one preventive maintenance sweep",
	Long: `Spawn due work orders, mark late schedules overdue and close schedules
past their end date, then exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openGorm(cmd.Context(), cfg)
		defer database.Close(db)

		emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
		if err != nil {
			log.Fatalf("Failed to set up email: %v", err)
		}
		companyRepo := repository.NewCompanyRepository(db)
		userRepo := repository.NewUserRepository(db)

		scheduler := service.NewMaintenanceScheduler(
			repository.NewTransactor(db),
			repository.NewPreventiveMaintenanceRepository(db),
			repository.NewWorkOrderRepository(db),
			userRepo,
			mailer.NewNotifier(emailService, companyRepo, cfg.BaseURL),
			cfg.Scheduler.Interval,
			slog.Default(),
		)
		scheduler.SetBatchSize(cfg.Scheduler.BatchSize)
		if batchSize > 0 {
			scheduler.SetBatchSize(batchSize)
		}
		scheduler.SetDryRun(dryRun)

		result, err := scheduler.RunOnce(cmd.Context())
		if err != nil {
			log.Fatalf("Sweep failed: %v", err)
		}

		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
		if result.Failed > 0 {
			os.Exit(1)
		}
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage refresh tokens",
}

var tokensPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired refresh tokens",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openGorm(cmd.Context(), cfg)
		defer database.Close(db)

		authService := service.NewAuthService(
			repository.NewTransactor(db),
			repository.NewCompanyRepository(db),
			repository.NewUserRepository(db),
			repository.NewRefreshTokenRepository(db),
			auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL),
			service.NopNotifier{},
		)

		n, err := authService.PruneTokens(cmd.Context())
		if err != nil {
			log.Fatalf("Failed to prune tokens: %v", err)
		}
		fmt.Printf("Deleted %d expired refresh tokens\n", n)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sarpactl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func openSQL(cfg *config.Config) *sql.DB {
	if dbConnString != "" {
		cfg.Database.URL = dbConnString
	}
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func openGorm(ctx context.Context, cfg *config.Config) *gorm.DB {
	if dbConnString != "" {
		cfg.Database.URL = dbConnString
	}
	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
