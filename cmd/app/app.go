package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackforge/hackathon-api/internal/api"
	"github.com/hackforge/hackathon-api/internal/config"
	"github.com/hackforge/hackathon-api/internal/db"
	"github.com/hackforge/hackathon-api/internal/logger"
	"github.com/hackforge/hackathon-api/internal/storage"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 15 * time.Second
)

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if conf.API.LogLevel != "" {
		if err = logger.SetLevel(conf.API.LogLevel); err != nil {
			return fmt.Errorf("failed to set log level -> %w", err)
		}
	}
	config.Watch(configPath, func(next *config.AppConfig) {
		if err := logger.SetLevel(next.API.LogLevel); err != nil {
			zap.L().Warn("ignoring invalid log level", zap.String("log_level", next.API.LogLevel))
			return
		}
		zap.L().Info("log level reloaded", zap.String("log_level", next.API.LogLevel))
	})

	database, err := openDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	uploader, err := openStorage(ctx, conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	s := api.NewServer(conf, database, uploader)
	go s.Live.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err = <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
	case <-ctx.Done():
		zap.L().Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("failed to shut down the server -> %w", err)
		}
	}

	zap.L().Info("server stopped")
	_ = zap.L().Sync()

	return nil
}

func openDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	switch conf.Database.Driver {
	case "mysql":
		return db.OpenMySQL(conf.MySQL)
	case "postgres", "":
		return db.OpenPostgres(conf.Postgres)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Database.Driver)
	}
}

// openStorage returns a nil uploader when no bucket is configured.
func openStorage(ctx context.Context, conf *config.StorageConfig) (storage.FileUploader, error) {
	if !conf.Enabled() {
		zap.L().Info("object storage not configured, sponsor logo uploads disabled")
		return nil, nil
	}

	return storage.NewS3Uploader(ctx, storage.S3Config{
		Endpoint:        conf.Endpoint,
		Region:          conf.Region,
		AccessKeyID:     conf.AccessKeyID,
		SecretAccessKey: conf.SecretAccessKey,
		Bucket:          conf.Bucket,
		PublicBaseURL:   conf.PublicBaseURL,
		UsePathStyle:    conf.UsePathStyle,
	})
}
