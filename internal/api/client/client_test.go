package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	"github.com/donaldgifford/dealer-appraisal/internal/engine"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func jsonServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1")
	_, err := c.ListDealerships(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_ProblemDetail(t *testing.T) {
	t.Parallel()

	c := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"title":"Unprocessable Entity","status":422,"detail":"validation failed",` +
			`"errors":[{"message":"expected required property phone to be present","location":"body"}]}`))
	})

	_, err := c.CreateDealership(context.Background(), &handlers.DealershipBody{Name: "Lakeshore Toyota"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "validation failed; body: expected required property phone to be present", apiErr.Detail)
	assert.Contains(t, err.Error(), "API error (HTTP 422)")
}

func TestClient_RawErrorBody(t *testing.T) {
	t.Parallel()

	c := jsonServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable\n"))
	})

	_, err := c.ListVehicles(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "API error (HTTP 502): upstream unavailable", err.Error())
	assert.False(t, IsNotFound(err))
}

func TestClient_IsNotFound(t *testing.T) {
	t.Parallel()

	c := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/vehicles/vin/4T1G11AK5LU123456", r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]any{"status": 404, "detail": "vehicle not found"})
	})

	_, err := c.GetVehicleByVIN(context.Background(), "4T1G11AK5LU123456")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "vehicle not found")
}

func TestClient_Appraise(t *testing.T) {
	t.Parallel()

	c := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appraisals", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req engine.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Camry", req.Vehicle.Model)
		assert.Equal(t, 2020, *req.Vehicle.Year)

		writeJSON(w, http.StatusOK, appraise.Result{
			Decision:     domain.DecisionBuy,
			TradeInOffer: 11692,
		})
	})

	res, err := c.Appraise(context.Background(), &engine.Request{
		Vehicle: engine.VehicleFields{Make: "Toyota", Model: "Camry", Year: ptr(2020)},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DecisionBuy, res.Decision)
	assert.InDelta(t, 11692, res.TradeInOffer, 0)
}

func TestClient_ListVehicles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filter    *VehicleFilter
		wantQuery map[string]string
	}{
		{name: "no filter", filter: nil, wantQuery: map[string]string{}},
		{
			name: "filters encoded",
			filter: &VehicleFilter{
				Make:    "Toyota",
				Status:  "available",
				MinYear: 2018,
				Search:  "hybrid",
				Limit:   10,
				OrderBy: "price",
			},
			wantQuery: map[string]string{
				"make":     "Toyota",
				"status":   "available",
				"min_year": "2018",
				"q":        "hybrid",
				"limit":    "10",
				"order_by": "price",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/vehicles", r.URL.Path)
				q := r.URL.Query()
				assert.Len(t, q, len(tt.wantQuery))
				for k, v := range tt.wantQuery {
					assert.Equal(t, v, q.Get(k), k)
				}
				writeJSON(w, http.StatusOK, VehiclePage{
					Vehicles: []domain.Vehicle{{ID: "v1", Make: "Toyota"}},
					Total:    1,
					Limit:    50,
				})
			})

			page, err := c.ListVehicles(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, 1, page.Total)
			require.Len(t, page.Vehicles, 1)
			assert.Equal(t, "v1", page.Vehicles[0].ID)
		})
	}
}

func TestClient_VehicleLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(*Client) (*domain.Vehicle, error)
		wantPath string
	}{
		{
			name:     "by id",
			call:     func(c *Client) (*domain.Vehicle, error) { return c.GetVehicle(context.Background(), "v1") },
			wantPath: "/api/v1/vehicles/v1",
		},
		{
			name:     "by stock number",
			call:     func(c *Client) (*domain.Vehicle, error) { return c.GetVehicleByStockNumber(context.Background(), "LT2291") },
			wantPath: "/api/v1/vehicles/stock/LT2291",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				writeJSON(w, http.StatusOK, domain.Vehicle{ID: "v1", StockNumber: "LT2291"})
			})

			v, err := tt.call(c)
			require.NoError(t, err)
			assert.Equal(t, "LT2291", v.StockNumber)
		})
	}
}

func TestClient_ImportVehicles(t *testing.T) {
	t.Parallel()

	c := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/vehicles/bulk", r.URL.Path)

		var body struct {
			Vehicles []handlers.VehicleBody `json:"vehicles"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Vehicles, 2)

		writeJSON(w, http.StatusOK, BulkResult{
			Created: 1,
			Failed:  1,
			Errors:  []handlers.BulkRowError{{Index: 1, Error: "model is required"}},
		})
	})

	res, err := c.ImportVehicles(context.Background(), []handlers.VehicleBody{
		{Make: "Toyota", Model: "Camry", Year: 2020},
		{Make: "Honda", Year: 2019},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Index)
}

func TestClient_DeleteDealership(t *testing.T) {
	t.Parallel()

	c := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/dealerships/d1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteDealership(context.Background(), "d1"))
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
