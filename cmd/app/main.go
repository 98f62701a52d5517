package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hospital-service/internal/auth"
	"hospital-service/internal/config"
	analyticsBookings "hospital-service/internal/http-server/handlers/analytics/bookings"
	analyticsDashboard "hospital-service/internal/http-server/handlers/analytics/dashboard"
	loginHandler "hospital-service/internal/http-server/handlers/auth/login"
	meHandler "hospital-service/internal/http-server/handlers/auth/me"
	registerHandler "hospital-service/internal/http-server/handlers/auth/register"
	apptCancel "hospital-service/internal/http-server/handlers/appointments/cancel"
	apptCreate "hospital-service/internal/http-server/handlers/appointments/create"
	apptGet "hospital-service/internal/http-server/handlers/appointments/get"
	apptUpdate "hospital-service/internal/http-server/handlers/appointments/update"
	blogCategories "hospital-service/internal/http-server/handlers/blog/categories"
	blogCreate "hospital-service/internal/http-server/handlers/blog/create"
	blogDelete "hospital-service/internal/http-server/handlers/blog/delete"
	blogGet "hospital-service/internal/http-server/handlers/blog/get"
	blogUpdate "hospital-service/internal/http-server/handlers/blog/update"
	contactCreate "hospital-service/internal/http-server/handlers/contact/create"
	contactGet "hospital-service/internal/http-server/handlers/contact/get"
	contactRead "hospital-service/internal/http-server/handlers/contact/read"
	diagBookingCreate "hospital-service/internal/http-server/handlers/diagnostics/bookings/create"
	diagBookingGet "hospital-service/internal/http-server/handlers/diagnostics/bookings/get"
	diagBookingUpdate "hospital-service/internal/http-server/handlers/diagnostics/bookings/update"
	diagTestCreate "hospital-service/internal/http-server/handlers/diagnostics/tests/create"
	diagTestDelete "hospital-service/internal/http-server/handlers/diagnostics/tests/delete"
	diagTestGet "hospital-service/internal/http-server/handlers/diagnostics/tests/get"
	diagTestUpdate "hospital-service/internal/http-server/handlers/diagnostics/tests/update"
	excDelete "hospital-service/internal/http-server/handlers/exceptions/delete"
	excGet "hospital-service/internal/http-server/handlers/exceptions/get"
	excSave "hospital-service/internal/http-server/handlers/exceptions/save"
	doctorCreate "hospital-service/internal/http-server/handlers/doctors/create"
	doctorDelete "hospital-service/internal/http-server/handlers/doctors/delete"
	doctorGet "hospital-service/internal/http-server/handlers/doctors/get"
	doctorUpdate "hospital-service/internal/http-server/handlers/doctors/update"
	scheduleCreate "hospital-service/internal/http-server/handlers/schedules/create"
	scheduleDelete "hospital-service/internal/http-server/handlers/schedules/delete"
	scheduleGet "hospital-service/internal/http-server/handlers/schedules/get"
	scheduleUpdate "hospital-service/internal/http-server/handlers/schedules/update"
	settingsGet "hospital-service/internal/http-server/handlers/settings/get"
	settingsUpdate "hospital-service/internal/http-server/handlers/settings/update"
	slotGet "hospital-service/internal/http-server/handlers/slots/get"
	specialtyCreate "hospital-service/internal/http-server/handlers/specialties/create"
	specialtyDelete "hospital-service/internal/http-server/handlers/specialties/delete"
	specialtyGet "hospital-service/internal/http-server/handlers/specialties/get"
	specialtyUpdate "hospital-service/internal/http-server/handlers/specialties/update"
	"hospital-service/internal/http-server/middleware/authmw"
	"hospital-service/internal/lock"
	"hospital-service/internal/notify"
	svc "hospital-service/internal/service"
	"hospital-service/internal/storage/postgres"
	"hospital-service/pkg/handlers/slogpretty"
	"hospital-service/pkg/middleware/mwlogger"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting API", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.New(cfg.StoragePath)
	if err != nil {
		log.Error("Failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	locker, err := lock.NewRedisLock(cfg.RedisAddr)
	if err != nil {
		log.Error("Failed to init redis lock", sl.Err(err))
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	notifier := notify.New(log, cfg.Hospital)

	service, err := svc.NewService(storage, locker, tokens, notifier, cfg.Hospital.Timezone)
	if err != nil {
		log.Error("Failed to init service", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			render.JSON(w, req, response.Response{})
		})

		// Public
		r.Post("/auth/login", loginHandler.New(log, service))
		r.Get("/specialties", specialtyGet.New(log, service))
		r.Get("/specialties/{id}", specialtyGet.New(log, service))
		r.Get("/doctors", doctorGet.New(log, service))
		r.Get("/doctors/{id}", doctorGet.New(log, service))
		r.Get("/available-slots/{doctor_id}", slotGet.New(log, service))
		r.Post("/appointments", apptCreate.New(log, service))
		r.Get("/diagnostic-tests", diagTestGet.New(log, service))
		r.Get("/diagnostic-tests/{id}", diagTestGet.New(log, service))
		r.Post("/diagnostic-bookings", diagBookingCreate.New(log, service))
		r.Get("/blog", blogGet.New(log, service))
		r.Get("/blog/categories", blogCategories.New(log, service))
		r.Get("/blog/{slug}", blogGet.New(log, service))
		r.Post("/contact", contactCreate.New(log, service))
		r.Get("/settings", settingsGet.New(log, service))

		// Staff (any authenticated user)
		r.Group(func(r chi.Router) {
			r.Use(authmw.New(log, tokens))

			r.Get("/auth/me", meHandler.New(log, service))

			r.Get("/appointments", apptGet.New(log, service))
			r.Get("/appointments/{id}", apptGet.New(log, service))
			r.Put("/appointments/{id}", apptUpdate.New(log, service))
			r.Delete("/appointments/{id}", apptCancel.New(log, service))

			r.Get("/diagnostic-bookings", diagBookingGet.New(log, service))
			r.Get("/diagnostic-bookings/{id}", diagBookingGet.New(log, service))
			r.Put("/diagnostic-bookings/{id}", diagBookingUpdate.New(log, service))

			r.Get("/contact", contactGet.New(log, service))
			r.Get("/contact/{id}", contactGet.New(log, service))
			r.Put("/contact/{id}/read", contactRead.New(log, service))

			r.Get("/analytics/dashboard", analyticsDashboard.New(log, service))
			r.Get("/analytics/bookings", analyticsBookings.New(log, service))

			r.Get("/schedules", scheduleGet.New(log, service))
			r.Get("/schedules/{id}", scheduleGet.New(log, service))
			r.Get("/schedule-exceptions", excGet.New(log, service))
			r.Get("/schedule-exceptions/{id}", excGet.New(log, service))

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireAdmin)

				r.Post("/auth/register", registerHandler.New(log, service))

				r.Post("/specialties", specialtyCreate.New(log, service))
				r.Put("/specialties/{id}", specialtyUpdate.New(log, service))
				r.Delete("/specialties/{id}", specialtyDelete.New(log, service))

				r.Post("/doctors", doctorCreate.New(log, service))
				r.Put("/doctors/{id}", doctorUpdate.New(log, service))
				r.Delete("/doctors/{id}", doctorDelete.New(log, service))

				r.Post("/schedules", scheduleCreate.New(log, service))
				r.Put("/schedules/{id}", scheduleUpdate.New(log, service))
				r.Delete("/schedules/{id}", scheduleDelete.New(log, service))

				r.Post("/schedule-exceptions", excSave.New(log, service))
				r.Delete("/schedule-exceptions/{id}", excDelete.New(log, service))

				r.Post("/diagnostic-tests", diagTestCreate.New(log, service))
				r.Put("/diagnostic-tests/{id}", diagTestUpdate.New(log, service))
				r.Delete("/diagnostic-tests/{id}", diagTestDelete.New(log, service))

				r.Get("/admin/blog", blogGet.Admin(log, service))
				r.Get("/admin/blog/{id}", blogGet.Admin(log, service))
				r.Post("/blog", blogCreate.New(log, service))
				r.Put("/blog/{id}", blogUpdate.New(log, service))
				r.Delete("/blog/{id}", blogDelete.New(log, service))

				r.Put("/settings", settingsUpdate.New(log, service))
			})
		})
	})

	serv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErrCh := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", slog.String("addr", cfg.HTTPServer.Address))
		if err := serv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		} else {
			serverErrCh <- nil
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", sl.Err(err))
		} else {
			log.Info("HTTP server stopped gracefully")
		}
	}

	shutdownTimeout := cfg.HTTPServer.ShutdownTimeout

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down HTTP server", slog.String("timeout", shutdownTimeout.String()))

	if err := serv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", sl.Err(err))
	} else {
		log.Info("Server shutdown complete")
	}

	if storage != nil {
		if err := storage.Close(); err != nil {
			log.Error("Failed to close storage", sl.Err(err))
		} else {
			log.Info("Storage closed")
		}
	}

	if locker != nil {
		if err := locker.Close(); err != nil {
			log.Error("Failed to close locker", sl.Err(err))
		} else {
			log.Info("Locker closed")
		}
	}

	log.Info("Shutdown finished, server stopped")

}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
