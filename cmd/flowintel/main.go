package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/liamashdown/flowintel/internal/api"
	"github.com/liamashdown/flowintel/internal/config"
	"github.com/liamashdown/flowintel/internal/rng"
	"github.com/liamashdown/flowintel/internal/secrets"
	"github.com/liamashdown/flowintel/internal/storage"
)

func main() {
	// Initialize logger
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	log.Info("Starting flowintel service...")

	if err := run(log); err != nil {
		log.WithError(err).Error("Service stopped with error")
		os.Exit(1)
	}

	log.Info("Graceful shutdown complete")
}

// run returns once both servers have stopped and storage is closed
func run(log *logrus.Logger) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"environment": cfg.Environment,
		"http_port":   cfg.HTTPPort,
		"health_port": cfg.HealthPort,
		"route_table": cfg.RouteTable,
		"cors":        cfg.CORSOrigins,
		"seeded":      cfg.RandomSeed != 0,
		"database":    secrets.Redact(cfg.DatabaseDSN),
	}).Info("Configuration loaded")

	// The readiness probe only checks the database when one is configured
	var ready api.Pinger
	if cfg.DatabaseDSN != "" {
		db, err := storage.New(cfg, log)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		ready = db

		log.Info("Database connected")
	}

	gin.SetMode(gin.ReleaseMode)
	_, apiServer := api.NewServer(cfg, log, rng.FromSeed(cfg.RandomSeed))
	opsServer := api.NewOpsServer(cfg.HealthPort, log, ready)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.HTTPPort).Info("Starting API server")
		return serve(apiServer)
	})

	g.Go(func() error {
		log.WithField("port", cfg.HealthPort).Info("Starting HTTP server (health + metrics)")
		return serve(opsServer)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return errors.Join(
			apiServer.Shutdown(shutdownCtx),
			opsServer.Shutdown(shutdownCtx),
		)
	})

	return g.Wait()
}

func serve(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
