package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/dealer-appraisal/internal/api/middleware"
	"github.com/donaldgifford/dealer-appraisal/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response",
			method: http.MethodGet,
			route:  "/api/v1/dealerships",
			path:   "/api/v1/dealerships",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, []string{})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "labels by route template",
			method: http.MethodGet,
			route:  "/api/v1/vehicles/:id",
			path:   "/api/v1/vehicles/7f0c",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records POST appraisal",
			method: http.MethodPost,
			route:  "/api/v1/appraisals",
			path:   "/api/v1/appraisals",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "uses status of returned error",
			method: http.MethodPost,
			route:  "/api/v1/vehicles/bulk",
			path:   "/api/v1/vehicles/bulk",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusTooManyRequests, "slow down")
			},
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			statusStr := strconv.Itoa(tt.wantStatus)
			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, statusStr))

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, statusStr))
			assert.InDelta(t, 1, after-before, 0)

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		gauge  prometheus.Gauge
		want   float64
	}{
		{name: "healthz up", path: "/healthz", status: http.StatusOK, gauge: metrics.HealthzUp, want: 1},
		{name: "readyz down", path: "/readyz", status: http.StatusServiceUnavailable, gauge: metrics.ReadyzUp, want: 0},
		{name: "readyz up", path: "/readyz", status: http.StatusOK, gauge: metrics.ReadyzUp, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
				http.MethodGet, tt.path, strconv.Itoa(tt.status)))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			assert.InDelta(t, tt.want, testutil.ToFloat64(tt.gauge), 0)

			after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(
				http.MethodGet, tt.path, strconv.Itoa(tt.status)))
			assert.InDelta(t, before, after, 0, "probe paths are not counted")
		})
	}
}
