package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bizmatch/backend/config"
	"github.com/bizmatch/backend/internal/database"
	"github.com/bizmatch/backend/internal/server"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	// Redis is optional: without it the API runs unthrottled and uncached.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logrus.Warnf("redis unavailable, continuing without it: %v", err)
		redisClient = nil
	}

	srv := server.New(cfg, db, redisClient)

	errChan := make(chan error, 1)
	go func() {
		logrus.Infof("Server running on port %s", cfg.AppPort)
		errChan <- srv.Start(cfg.AppPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	case sig := <-quit:
		logrus.Infof("received signal: %v", sig)
	}

	logrus.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server shutdown error: %v", err)
	}
	logrus.Info("server stopped")
}
