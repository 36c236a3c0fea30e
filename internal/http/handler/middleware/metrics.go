package middleware

import (
	"net/http"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestObserver . RequestObserver
type RequestObserver interface {
	ObserveRequest(path, method string, status int, d time.Duration)
}

type MetricsMiddleware struct {
	observer RequestObserver
}

func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{
		observer: observer,
	}
}

// Metrics must wrap the mux directly so the matched route pattern is visible
// once the request has been served. Unmatched requests share one label.
func (m *MetricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveRequest(route, r.Method, rec.status, time.Since(start))
	})
}
