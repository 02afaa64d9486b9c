package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventix/internal/config"
	"eventix/internal/http-server/handlers/business/dashboard"
	"eventix/internal/http-server/handlers/event/createEvent"
	"eventix/internal/http-server/handlers/event/getAllEvents"
	"eventix/internal/http-server/handlers/event/getEventInfo"
	"eventix/internal/http-server/handlers/ticket/purchaseTicket"
	"eventix/internal/http-server/handlers/user/listUsers"
	"eventix/internal/http-server/handlers/user/login"
	"eventix/internal/http-server/handlers/user/profile"
	"eventix/internal/http-server/handlers/user/register"
	"eventix/internal/http-server/middleware/auth"
	"eventix/internal/http-server/middleware/mwlogger"
	"eventix/internal/http-server/middleware/mwmetrics"
	"eventix/internal/lib/logger/handlers/slogpretty"
	"eventix/internal/lib/logger/sl"
	"eventix/internal/models"
	"eventix/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventix", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database, &cfg.Tickets)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New())
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/api/register", register.New(log, storage))
	router.Post("/api/login", login.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))
	router.Get("/api/events", getAllEvents.New(log, storage))
	router.Get("/api/events/{id}", getEventInfo.New(log, storage))

	router.With(auth.New(log, cfg.Auth.Secret)).
		Get("/api/profile", profile.New(log))
	router.With(auth.New(log, cfg.Auth.Secret, models.RoleEndUser)).
		Post("/api/tickets", purchaseTicket.New(log, storage))
	router.With(auth.New(log, cfg.Auth.Secret, models.RoleBusiness)).
		Post("/api/events", createEvent.New(log, storage))
	router.With(auth.New(log, cfg.Auth.Secret, models.RoleBusiness)).
		Get("/api/business/dashboard", dashboard.New(log))
	router.With(auth.New(log, cfg.Auth.Secret, models.RoleAdmin)).
		Get("/api/admin/users", listUsers.New(log, storage))

	router.Handle("/metrics", promhttp.Handler())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				completed, err := storage.CompletePastEvents()
				if err != nil {
					log.Error("failed to complete past events", sl.Err(err))
					continue
				}
				if completed > 0 {
					log.Info("past events completed", slog.Int64("count", completed))
				}
			case <-stop:
				return
			}
		}
	}()

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
