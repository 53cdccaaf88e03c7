package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"freight/cmd"
	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/carrierrepo"
	"freight/internal/adapters/out/postgres/effectrepo"
	"freight/internal/adapters/out/postgres/jobrepo"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultArchiveDelayHours    = 72
	defaultWarningWindowDays    = 30
	defaultArchiveSweepSchedule = "0 * * * * *"
	gracefulShutdownTimeout     = 10 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := getConfigs(logger)

	db, err := openDatabase(config)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db)

	jobManager := jobs.NewJobManager(
		root.CreateArchiveDueJobsCommandHandler(),
		config.ArchiveSweepSchedule,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := buildWebServer(&root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if serveErr := e.Start("0.0.0.0:" + config.HTTPPort); serveErr != nil {
			logger.Info("Web server stopped", "reason", serveErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Web server shutdown failed", "error", err)
	}
}

func buildWebServer(root *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpadapter.NewServer(
		root.CreateCreateJobCommandHandler(),
		root.CreateCreateCarrierCommandHandler(),
		root.CreateAllocateCarrierCommandHandler(),
		root.CreateChangeJobStatusCommandHandler(),
		root.CreateRecordProofOfDeliveryCommandHandler(),
		root.CreateGetActiveJobsQueryHandler(),
		root.CreateGetCarriersQueryHandler(),
		root.CreateMatchCarriersQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)

	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&jobrepo.JobDTO{},
		&carrierrepo.CarrierDTO{},
		&carrierrepo.DocumentDTO{},
		&effectrepo.EffectDTO{},
	)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, using process environment")
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		ArchiveDelay: time.Duration(
			envIntOrDefault("ARCHIVE_DELAY_HOURS", defaultArchiveDelayHours)) * time.Hour,
		ComplianceWarningWindow: time.Duration(
			envIntOrDefault("COMPLIANCE_WARNING_WINDOW_DAYS", defaultWarningWindowDays)) * 24 * time.Hour,
		ArchiveSweepSchedule: envOrDefault("ARCHIVE_SWEEP_SCHEDULE", defaultArchiveSweepSchedule),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
