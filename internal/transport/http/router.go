// Package httptransport assembles the chi router: shared middleware, module
// handlers, health checks and the metrics endpoint.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kisan/internal/platform/i18n"
	"kisan/pkg/platform/middleware/request"
	"kisan/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps are the collaborators the router mounts.
type Deps struct {
	Logger       *slog.Logger
	DefaultLang  i18n.Lang
	Timeout      time.Duration
	MaxBodyBytes int64

	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Latency  *request.Metrics

	Health   Registrar
	Handlers []Registrar
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.Latency))

	if d.Health != nil {
		d.Health.Register(r)
	}
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(api chi.Router) {
		if d.Timeout > 0 {
			api.Use(request.Timeout(d.Timeout))
		}
		if d.MaxBodyBytes > 0 {
			api.Use(request.BodyLimit(d.MaxBodyBytes))
		}
		api.Use(request.ContentTypeJSON)
		api.Use(i18n.Middleware(d.DefaultLang))

		for _, h := range d.Handlers {
			h.Register(api)
		}
	})

	return r
}
