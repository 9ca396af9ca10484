package httpmiddleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instrument records request count and duration metrics for the given
// service through the provided meter provider.
func Instrument(service string, mp metric.MeterProvider) Middleware {
	meter := mp.Meter("github.com/skypro/skyshop/pkg/httpmiddleware")

	requests, _ := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests handled"))
	duration, _ := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration"),
		metric.WithUnit("ms"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}
			attrs := metric.WithAttributes(
				attribute.String("service", service),
				attribute.String("http.method", r.Method),
				attribute.Int("http.status_code", status),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), float64(time.Since(start).Milliseconds()), attrs)
		})
	}
}
