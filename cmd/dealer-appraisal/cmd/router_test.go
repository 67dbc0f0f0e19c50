package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-appraisal/internal/config"
	"github.com/donaldgifford/dealer-appraisal/internal/engine"
	storeMocks "github.com/donaldgifford/dealer-appraisal/internal/store/mocks"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	"github.com/donaldgifford/dealer-appraisal/pkg/logger"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

type stubAppraiser struct{}

func (stubAppraiser) Appraise(context.Context, *engine.Request) (*appraise.Result, error) {
	return &appraise.Result{Decision: domain.DecisionWholesale, TradeInOffer: 8000}, nil
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.RemoteAddr = "198.51.100.7:4000"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_Routes(t *testing.T) {
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().Ping(mock.Anything).Return(nil).Once()
	ms.EXPECT().ListDealerships(mock.Anything).Return([]domain.Dealership{{ID: "d1", Name: "Lakeshore Toyota"}}, nil).Once()

	e, _ := newRouter(&routerDeps{store: ms, appraiser: stubAppraiser{}, log: logger.Discard()})

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: "ok"},
		{method: http.MethodGet, path: "/readyz", wantStatus: http.StatusOK, wantBody: "ready"},
		{method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "dap_"},
		{method: http.MethodGet, path: "/openapi.json", wantStatus: http.StatusOK, wantBody: "/api/v1/appraisals"},
		{method: http.MethodGet, path: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: "swagger-ui"},
		{method: http.MethodGet, path: "/api/v1/dealerships", wantStatus: http.StatusOK, wantBody: "Lakeshore Toyota"},
		{method: http.MethodPost, path: "/api/v1/appraisals", wantStatus: http.StatusOK, wantBody: `"decision":"wholesale"`},
	}

	for _, tt := range tests {
		body := ""
		if tt.method == http.MethodPost {
			body = `{"vehicle":{"make":"Honda","model":"Civic"}}`
		}
		rec := serve(e, tt.method, tt.path, body)
		assert.Equal(t, tt.wantStatus, rec.Code, tt.path)
		assert.Contains(t, rec.Body.String(), tt.wantBody, tt.path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), tt.path)
	}
}

func TestNewRouter_RateLimitsAppraisals(t *testing.T) {
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListVehicles(mock.Anything, mock.Anything).Return(nil, 0, nil).Times(2)

	e, _ := newRouter(&routerDeps{
		store:     ms,
		appraiser: stubAppraiser{},
		log:       logger.Discard(),
		rateLimit: config.RateLimitConfig{Enabled: true, PerSecond: 0.001, Burst: 1},
	})

	body := `{"vehicle":{"make":"Honda","model":"Civic"}}`
	require.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/api/v1/appraisals", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, http.MethodPost, "/api/v1/appraisals", body).Code)

	for range 2 {
		assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/v1/vehicles", "").Code)
	}
}

func TestOpenAPICommand(t *testing.T) {
	cmd := openapiCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "create-appraisal")
	assert.Contains(t, out.String(), "bulk-create-vehicles")
}

func TestVersionCommand(t *testing.T) {
	cmd := versionCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "dealer-appraisal dev\n", out.String())
}
