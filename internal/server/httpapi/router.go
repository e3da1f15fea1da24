package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every route. The gatherer backs /metrics; pass the same
// registry the metrics were created with.
func NewRouter(h *Handler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/applications", h.handleSubmit)
		r.Get("/applications/{regno}", h.handleLookup)
		r.Get("/applications/{regno}/receipt", h.handleReceipt)

		r.Post("/admin/login", h.handleAdminLogin)
		r.Route("/admin/applications", func(r chi.Router) {
			r.Use(h.requireAdmin)
			r.Get("/", h.handleAdminList)
			r.Get("/events", h.handleEvents)
			r.Patch("/{id}", h.handleAdminUpdate)
			r.Delete("/{id}", h.handleAdminDelete)
		})
	})

	return r
}
