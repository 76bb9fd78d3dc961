package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"printshop/cmd"
	"printshop/internal/adapters/out/auth"
	"printshop/internal/adapters/out/disk"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := orderrepo.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	fileStore, err := disk.NewStore(disk.Config{
		Dir:                configs.UploadDir,
		MaxFileSize:        configs.MaxFileSize,
		MaxFilesPerRequest: configs.MaxFilesPerRequest,
	})
	if err != nil {
		log.Fatalf("Error initializing file store: %v", err)
	}

	authenticator, err := auth.NewBcryptTokenAuthenticator(configs.AdminTokenHash)
	if err != nil {
		log.Fatalf("Error initializing admin authenticator: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, fileStore, authenticator, logger)

	jobManager := jobs.NewJobManager(
		app.CreateSweepOrphanFilesCommandHandler(), configs.SweepGrace, logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:           envOr("HTTP_PORT", "8080"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             envOr("DB_PORT", "5432"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          envOr("DB_SSLMODE", "disable"),
		UploadDir:          envOr("UPLOAD_DIR", "uploads"),
		MaxFileSize:        envInt64("MAX_FILE_SIZE", disk.DefaultMaxFileSize),
		MaxFilesPerRequest: envInt("MAX_FILES_PER_REQUEST", disk.DefaultMaxFilesPerRequest),
		AdminTokenHash:     os.Getenv("ADMIN_TOKEN_HASH"),
		AppEnv:             envOr("APP_ENV", "development"),
		SweepGrace:         envDuration("SWEEP_GRACE", time.Hour),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
