package middleware

import (
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Tracing starts a server span per request. Health probes are not traced.
func Tracing(service string) Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, service,
			otelhttp.WithFilter(traceable),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "HTTP " + r.Method
			}),
		)
	}
}

func traceable(r *http.Request) bool {
	switch strings.TrimSuffix(r.URL.Path, "/") {
	case "/live", "/ready", "/health":
		return false
	}
	return true
}
