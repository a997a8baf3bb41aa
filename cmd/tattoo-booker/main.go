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

	"tattooBooker/internal/availability"
	"tattooBooker/internal/config"
	"tattooBooker/internal/http-server/handlers/artist/getAllArtists"
	"tattooBooker/internal/http-server/handlers/booking/createBooking"
	"tattooBooker/internal/http-server/handlers/booking/deleteBooking"
	"tattooBooker/internal/http-server/handlers/booking/getAllBookings"
	"tattooBooker/internal/http-server/handlers/booking/getAvailability"
	"tattooBooker/internal/http-server/handlers/booking/updateBooking"
	"tattooBooker/internal/http-server/handlers/user/createUser"
	"tattooBooker/internal/http-server/handlers/user/getUsers"
	"tattooBooker/internal/http-server/handlers/work/getWorks"
	"tattooBooker/internal/http-server/middleware/mwlogger"
	"tattooBooker/internal/lib/logger/handlers/slogpretty"
	"tattooBooker/internal/lib/logger/sl"
	"tattooBooker/internal/notification"
	"tattooBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting tattoo booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	notifier, err := notification.NewTelegramNotifier(cfg.Telegram.Token, cfg.Telegram.ChatID, log)
	if err != nil {
		log.Error("failed to init telegram notifier", sl.Err(err))
		os.Exit(1)
	}

	calculator := availability.NewCalculator(availability.Config{
		OpenHour:    cfg.Studio.OpenHour,
		CloseHour:   cfg.Studio.CloseHour,
		SlotMinutes: cfg.Studio.SlotMinutes,
	}, storage)

	guard := availability.NewConflictGuard(storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Get("/artists", getAllArtists.New(log, storage))
	router.Get("/works", getWorks.New(log, storage))
	router.Get("/availability", getAvailability.New(log, calculator))

	router.Route("/bookings", func(r chi.Router) {
		r.Get("/", getAllBookings.New(log, storage))
		r.Post("/", createBooking.New(log, guard, storage, notifier))
		r.Put("/{id}", updateBooking.New(log, guard, storage))
		r.Delete("/{id}", deleteBooking.New(log, storage))
	})

	router.Get("/users", getUsers.New(log, storage))
	router.Post("/users", createUser.New(log, storage))

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
	default:
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
