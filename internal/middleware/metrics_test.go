// AngelaMos | 2026
// metrics_test.go

package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	m := NewMetrics()

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/api/empresas/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Method(http.MethodGet, "/metrics", m.Exposition())

	for _, path := range []string{"/api/empresas/1", "/api/empresas/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body),
		`insights_http_requests_total{method="GET",route="/api/empresas/{id}",status="204"} 2`)
}

func TestRateLimitedCountsRejections(t *testing.T) {
	m := NewMetrics()
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit:     PerWindow(1, 1, time.Hour),
		OnLimited: m.RateLimited("auth"),
	})
	h := rl.Handler(okHandler())

	var last *httptest.ResponseRecorder
	for range 3 {
		last = httptest.NewRecorder()
		h.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/auth/token", nil))
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.InDelta(t, 2, testutil.ToFloat64(m.rateLimited.WithLabelValues("auth")), 0)
}
