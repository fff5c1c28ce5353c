package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"perfscope/internal/domain/audit"
	"perfscope/internal/domain/auth"
	"perfscope/internal/domain/catalog"
	"perfscope/internal/domain/org"
	"perfscope/internal/domain/reporting"
	"perfscope/internal/platform/config"
	"perfscope/internal/platform/db"
	"perfscope/internal/platform/metrics"
	"perfscope/internal/platform/summary"
	"perfscope/internal/transport/http/api"
	analyticshandler "perfscope/internal/transport/http/handlers/analytics"
	authhandler "perfscope/internal/transport/http/handlers/auth"
	cataloghandler "perfscope/internal/transport/http/handlers/catalog"
	orghandler "perfscope/internal/transport/http/handlers/org"
	reportinghandler "perfscope/internal/transport/http/handlers/reporting"
	"perfscope/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	authStore := auth.NewStore(pool)
	orgService := org.NewService(org.NewStore(pool))
	catalogService := catalog.NewService(catalog.NewStore(pool))
	reportingService := reporting.NewService(reporting.NewStore(pool))
	auditService := audit.New(pool)

	var summaryService *summary.Service
	if cfg.SummaryEnabled {
		oracle := summary.NewOpenAIOracle(cfg.SummaryAPIKey, cfg.SummaryModel)
		summaryService = summary.NewService(oracle, cfg.SummaryTimeout)
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

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
		authhandler.NewHandler(authStore, cfg.JWTSecret).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTSecret))

			orghandler.NewHandler(orgService, authStore).RegisterRoutes(r)
			cataloghandler.NewHandler(catalogService, orgService, authStore).RegisterRoutes(r)
			reportinghandler.NewHandler(reportingService, orgService, auditService, authStore).RegisterRoutes(r)
			analyticshandler.NewHandler(reportingService, catalogService, orgService, summaryService, authStore).RegisterRoutes(r)

			if cfg.MetricsEnabled {
				r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
					api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
				})
			}
		})
	})

	log.Printf("perfscope server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
