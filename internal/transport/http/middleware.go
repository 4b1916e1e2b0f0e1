package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-facets/internal/pkg/metrics"
)

// instrument records metrics and a log line for one operation.
func instrument(operation string, m *metrics.Metrics, logger *zap.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.ObserveRequest("http", operation, outcome(status), elapsed)

		fields := []zap.Field{
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("operation", operation),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("http request failed", fields...)
			return
		}
		logger.Info("http request", fields...)
	}
}

func outcome(status int) string {
	switch {
	case status < http.StatusBadRequest:
		return metrics.OutcomeOK
	case status < http.StatusInternalServerError:
		return metrics.OutcomeInvalidInput
	default:
		return metrics.OutcomeError
	}
}
