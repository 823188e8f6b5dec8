package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nippo/internal/domain/auth"
	"nippo/internal/domain/report"
	"nippo/internal/domain/roster"
	"nippo/internal/platform/config"
	"nippo/internal/platform/db"
	accountinghandler "nippo/internal/transport/http/handlers/accounting"
	authhandler "nippo/internal/transport/http/handlers/auth"
	reportshandler "nippo/internal/transport/http/handlers/reports"
	rosterhandler "nippo/internal/transport/http/handlers/roster"
	usershandler "nippo/internal/transport/http/handlers/users"
	"nippo/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, seeds and builds the router. It is the whole
// application minus the listener, which keeps it usable from tests.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	authStore := auth.NewStore(pool)
	reportStore := report.NewStore(pool)
	reportService := report.NewService(reportStore)
	rosterStore := roster.NewStore(pool)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)
		reportshandler.NewHandler(reportService, rosterStore, authStore).RegisterRoutes(r)
		accountinghandler.NewHandler(reportStore, authStore).RegisterRoutes(r)
		rosterhandler.NewHandler(rosterStore, authStore).RegisterRoutes(r)
		usershandler.NewHandler(authStore, authStore).RegisterRoutes(r)
	})

	return &App{Config: cfg, Pool: pool, Router: router}, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

func Run() {
	ctx := context.Background()
	app, err := New(ctx, config.Load())
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	defer app.Close()

	log.Printf("nippo server listening on %s", app.Config.Addr)
	if err := http.ListenAndServe(app.Config.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
