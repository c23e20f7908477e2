package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/dcastano/optica-inventory/config"
	"github.com/dcastano/optica-inventory/internal/brand"
	brandH "github.com/dcastano/optica-inventory/internal/brand/handler"
	brandRepoPkg "github.com/dcastano/optica-inventory/internal/brand/repository"
	brandUCPkg "github.com/dcastano/optica-inventory/internal/brand/usecase"
	"github.com/dcastano/optica-inventory/internal/lens"
	lensH "github.com/dcastano/optica-inventory/internal/lens/handler"
	lensRepoPkg "github.com/dcastano/optica-inventory/internal/lens/repository"
	lensUCPkg "github.com/dcastano/optica-inventory/internal/lens/usecase"
	"github.com/dcastano/optica-inventory/internal/metrics"
	"github.com/dcastano/optica-inventory/internal/server"
	"github.com/dcastano/optica-inventory/migrations"
	"github.com/dcastano/optica-inventory/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer func() { _ = appLogger.Sync() }()

	// 3. Initialize Storage
	var (
		brandRepo brand.Repository
		lensRepo  lens.Repository
	)
	switch cfg.Storage.Driver {
	case "postgres":
		if err := runMigrations(cfg.Postgres.DSN()); err != nil {
			appLogger.Fatal("migrations failed", zap.Error(err))
		}
		appLogger.Info("migrations applied")

		db, err := sqlx.Connect("pgx", cfg.Postgres.DSN())
		if err != nil {
			appLogger.Fatal("could not connect to database", zap.Error(err))
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second)
		db.SetConnMaxIdleTime(time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second)
		appLogger.Info("connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		brandRepo = brandRepoPkg.NewPGRepository(db)
		lensRepo = lensRepoPkg.NewPGRepository(db)
	case "memory":
		appLogger.Info("using in-memory storage")
		brandRepo = brandRepoPkg.NewMemoryRepository()
		lensRepo = lensRepoPkg.NewMemoryRepository()
	default:
		appLogger.Fatal("unknown storage driver", zap.String("driver", cfg.Storage.Driver))
	}

	// 4. Initialize Metrics
	m := metrics.New()

	// 5. Initialize UseCases
	brandUC := brandUCPkg.NewBrandUseCase(brandRepo, appLogger)
	lensUC := lensUCPkg.NewLensUseCase(lensRepo, brandRepo, m, appLogger)

	// 6. Initialize Handlers
	brandHandler := brandH.NewBrandHandler(brandUC, appLogger)
	lensHandler := lensH.NewLensHandler(lensUC, appLogger)

	// 7. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := server.New(port, lensHandler, brandHandler)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()
	appLogger.Info("HTTP server started", zap.String("addr", port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

func runMigrations(dsn string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, ".")
}
