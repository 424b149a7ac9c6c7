package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/carbase/carbase/internal/infrastructure/http/handlers"
	"github.com/carbase/carbase/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	VehiclesHandler *handlers.VehiclesHandler
	CatalogHandler  *handlers.CatalogHandler
	HealthHandler   *handlers.HealthHandler
	Log             zerolog.Logger
	Secure          func(http.Handler) http.Handler
	CORS            func(http.Handler) http.Handler
	IPRateLimit     func(http.Handler) http.Handler
	Metrics         bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	r.Use(middleware.APIVersion("v1"))
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.SetHeader("Content-Type", "application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/", cfg.VehiclesHandler.List)
		r.Post("/", cfg.VehiclesHandler.Create)
		r.Get("/{id}", cfg.VehiclesHandler.Get)
		r.Put("/{id}", cfg.VehiclesHandler.Update)
		r.Delete("/{id}", cfg.VehiclesHandler.Delete)
	})

	if cfg.CatalogHandler != nil {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", cfg.CatalogHandler.ListBrands)
			r.Get("/{id}/models", cfg.CatalogHandler.ListModels)
		})
	}

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
