package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/uptown-october/uptown-docs/internal/auth"
	documentshttp "github.com/uptown-october/uptown-docs/internal/documents/http"
	"github.com/uptown-october/uptown-docs/internal/observability"
	"github.com/uptown-october/uptown-docs/jobs"
)

const defaultRateWindow = time.Minute

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Auth             auth.Middleware
	AuthHandler      *auth.Handler
	DocumentsHandler *documentshttp.Handler
	JobsHandler      *jobs.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router for the document service.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Auth:    params.Auth,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	if params.AuthHandler != nil {
		params.AuthHandler.MountRoutes(r)
	}

	if params.JobsHandler != nil {
		r.Group(func(r chi.Router) {
			r.Use(params.Auth.RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin))
			params.JobsHandler.MountRoutes(r)
		})
	}

	if params.DocumentsHandler != nil {
		limit, window := 30, defaultRateWindow
		if params.Config != nil && params.Config.DocRateLimit > 0 {
			limit = params.Config.DocRateLimit
		}
		if params.Config != nil && params.Config.DocRateWindow > 0 {
			window = params.Config.DocRateWindow
		}
		r.Group(func(r chi.Router) {
			r.Use(httprate.Limit(limit, window, httprate.WithKeyFuncs(httprate.KeyByIP)))
			params.DocumentsHandler.MountRoutes(r, params.Auth)
		})
	}

	return r
}
