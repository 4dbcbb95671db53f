package http

import (
	"net/http"

	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Get("/restores", h.listRestores)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	// routes reachable from Slack slash commands
	router.Group(func(r chi.Router) {
		r.Use(h.withSlackSignature)

		r.Get("/inventory", h.inventory)
		r.Post("/inventory", h.inventory)
		r.Get("/restore", h.restore)
		r.Post("/restore", h.restore)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
