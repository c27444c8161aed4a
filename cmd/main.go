// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/auth"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/cache"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/config"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/database"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/handler"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/repository"
	"github.com/Shivanand-hulikatti/event-hotel-booking/internal/service"
	"github.com/Shivanand-hulikatti/event-hotel-booking/migrations"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(cfg config.Config, log *logrus.Logger) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required outside development")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── 1. Storage ───────────────────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg.DB, log)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	log.Info("connected to PostgreSQL")

	if err := migrations.Apply(ctx, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	tx := repository.NewTxManager(pool)
	enrollments := repository.NewEnrollmentRepository(pool)
	tickets := repository.NewTicketRepository(pool)
	payments := repository.NewPaymentRepository(pool)
	bookings := repository.NewBookingRepository(pool)
	hotels := cache.NewHotels(repository.NewHotelRepository(pool), redisClient, cfg.Redis.TTL)
	sessions := repository.NewSessionRepository(pool)

	eligibility := service.NewEligibilityChecker(enrollments, tickets)

	router := handler.NewRouter(handler.RouterConfig{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Auth:        auth.NewAuthenticator(cfg.JWTSecret, sessions),
		Booking:     handler.NewBookingHandler(service.NewBookingService(tx, eligibility, bookings), log),
		Hotel:       handler.NewHotelHandler(service.NewHotelService(eligibility, hotels), log),
		Payment:     handler.NewPaymentHandler(service.NewPaymentService(tx, enrollments, tickets, payments), log),
		Ticket:      handler.NewTicketHandler(service.NewTicketService(enrollments, tickets), log),
	})

	// ── 3. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
