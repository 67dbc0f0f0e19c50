package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-appraisal/internal/engine"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// run executes the root command against srv and returns stdout.
func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--server", srv.URL, "--output", "table"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReadRequest(t *testing.T) {
	t.Parallel()

	body := `{"vehicle":{"make":"Toyota","model":"Camry","year":2020,"kilometers":60000,` +
		`"body_type":"sedan","transmission":"automatic"},"condition":{"simple":"good"}}`

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		req, err := readRequest(strings.NewReader(body), "-")
		require.NoError(t, err)
		assert.Equal(t, "Camry", req.Vehicle.Model)
		require.NotNil(t, req.Vehicle.Year)
		assert.Equal(t, 2020, *req.Vehicle.Year)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "trade-in.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		req, err := readRequest(nil, path)
		require.NoError(t, err)
		assert.Equal(t, "good", req.Condition.Simple)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := readRequest(strings.NewReader(""), "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := readRequest(strings.NewReader(`{"vehicel":{}}`), "-")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := readRequest(nil, filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

func TestQuickRequest(t *testing.T) {
	t.Parallel()

	req := quickRequest("Honda", "Civic", "EX", 2019, "sedan", "cvt", "ON", "fair")
	require.NotNil(t, req.Vehicle.Year)
	assert.Equal(t, 2019, *req.Vehicle.Year)
	assert.Nil(t, req.Vehicle.Kilometers)
	assert.Equal(t, "fair", req.Condition.Simple)

	req = quickRequest("Honda", "Civic", "", 0, "", "", "", "good")
	assert.Nil(t, req.Vehicle.Year)
}

func TestAppraiseCommand(t *testing.T) {
	var got engine.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appraisals", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(appraise.Result{
			Decision:     domain.DecisionWholesale,
			TradeInOffer: 9800,
		})
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, srv, "appraise",
		"--make", "Toyota", "--model", "Corolla", "--year", "2016", "--km", "0",
		"--body", "sedan", "--transmission", "automatic")
	require.NoError(t, err)

	assert.Contains(t, out, "WHOLESALE")
	assert.Contains(t, out, "$9,800")
	require.NotNil(t, got.Vehicle.Kilometers)
	assert.Equal(t, 0, *got.Vehicle.Kilometers)
	assert.Equal(t, "Corolla", got.Vehicle.Model)
}

func TestVehiclesListCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/vehicles", r.URL.Path)
		assert.Equal(t, "Toyota", r.URL.Query().Get("make"))
		assert.Equal(t, "2019", r.URL.Query().Get("min_year"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"vehicles":[{"id":"v1","make":"Toyota","model":"RAV4","year":2021,` +
			`"price":31995,"kilometers":28000,"status":"available"}],"total":12,"limit":50,"offset":0}`))
	}))
	t.Cleanup(srv.Close)

	out, err := run(t, srv, "vehicles", "list", "--make", "Toyota", "--min-year", "2019")
	require.NoError(t, err)

	assert.Contains(t, out, "2021 Toyota RAV4")
	assert.Contains(t, out, "$31,995")
	assert.Contains(t, out, "Showing 1 of 12")
}

func TestDealershipsGetCommand_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":404,"detail":"dealership not found"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := run(t, srv, "dealerships", "get", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dealership not found")
}
