package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
)

// NewRouter mounts the catalog endpoints, health check and metrics.
func NewRouter(h *CatalogHandler, m *metrics.Metrics, logger *zap.Logger, timeout time.Duration) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1/categories/{categoryID}", func(r chi.Router) {
		if timeout > 0 {
			r.Use(middleware.Timeout(timeout))
		}
		r.Get("/products", instrument("list_products", m, logger, h.ListProducts))
		r.Get("/facets", instrument("get_facets", m, logger, h.GetFacets))
		r.Post("/facets/aggregate", instrument("aggregate_facets", m, logger, h.AggregateFacets))
	})

	return r
}
