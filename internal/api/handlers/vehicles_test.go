package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dealer-appraisal/internal/api/handlers"
	"github.com/donaldgifford/dealer-appraisal/internal/store"
	storeMocks "github.com/donaldgifford/dealer-appraisal/internal/store/mocks"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

const vehicleID = "0c7e5a1b-92d4-4f3e-b8a6-5d1f2e3c4b7a"

func camry() *domain.Vehicle {
	return &domain.Vehicle{
		ID:           vehicleID,
		DealershipID: dealerID,
		VIN:          "4T1G11AK5LU123456",
		StockNumber:  "LT2291",
		Condition:    "used",
		Make:         "Toyota",
		Model:        "Camry",
		Trim:         "SE",
		Year:         2020,
		Price:        24995,
		Kilometers:   60000,
		Transmission: domain.TransmissionAutomatic,
		FuelType:     domain.FuelGasoline,
		BodyType:     domain.BodySedan,
		Drivetrain:   domain.DriveFWD,
		Status:       domain.StatusAvailable,
	}
}

func vehicleBody() map[string]any {
	return map[string]any{
		"dealership_id": dealerID,
		"vin":           "4t1g11ak5lu123456",
		"make":          "Toyota",
		"model":         "Camry",
		"trim":          "SE",
		"year":          2020,
		"price":         24995,
		"kilometers":    60000,
		"transmission":  "8-Speed Automatic",
		"fuel_type":     "Gasoline",
		"body_type":     "Sport Utility Vehicle (SUV)",
		"drivetrain":    "All-Wheel Drive",
	}
}

func newVehicleAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterVehicleRoutes(api, handlers.NewVehiclesHandler(ms))
	return api
}

func TestListVehicles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "defaults",
			path: "/api/v1/vehicles",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListVehicles(mock.Anything, &store.VehicleQuery{}).
					Return([]domain.Vehicle{*camry()}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total":1`, `"limit":50`, "4T1G11AK5LU123456"},
		},
		{
			name: "filters are passed through",
			path: "/api/v1/vehicles?dealership_id=" + dealerID + "&make=toyota&model=camry&status=available&min_year=2018&max_year=2022&q=SE&limit=10&offset=20&order_by=price",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListVehicles(mock.Anything, &store.VehicleQuery{
						DealershipID: ptr(dealerID),
						Make:         ptr("toyota"),
						Model:        ptr("camry"),
						Status:       ptr("available"),
						MinYear:      ptr(2018),
						MaxYear:      ptr(2022),
						Search:       "SE",
						Limit:        10,
						Offset:       20,
						OrderBy:      "price",
					}).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"vehicles":[]`, `"limit":10`, `"offset":20`},
		},
		{
			name:       "invalid status",
			path:       "/api/v1/vehicles?status=scrapped",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/vehicles",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListVehicles(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"listing vehicles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newVehicleAPI(t, ms).Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}

func TestGetVehicleLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "by id",
			path: "/api/v1/vehicles/" + vehicleID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetVehicle(mock.Anything, vehicleID).Return(camry(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "by id not found",
			path: "/api/v1/vehicles/" + vehicleID,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetVehicle(mock.Anything, vehicleID).Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "by vin is upper-cased",
			path: "/api/v1/vehicles/vin/4t1g11ak5lu123456",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetVehicleByVIN(mock.Anything, "4T1G11AK5LU123456").Return(camry(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "by vin not found",
			path: "/api/v1/vehicles/vin/NOPE",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetVehicleByVIN(mock.Anything, "NOPE").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "by stock number",
			path: "/api/v1/vehicles/stock/LT2291",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetVehicleByStockNumber(mock.Anything, "LT2291").Return(camry(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "by stock number store error",
			path: "/api/v1/vehicles/stock/LT2291",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetVehicleByStockNumber(mock.Anything, "LT2291").Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newVehicleAPI(t, ms).Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, resp.Body.String(), "LT2291")
			}
		})
	}
}

func TestCreateVehicle(t *testing.T) {
	t.Parallel()

	t.Run("normalizes free-form fields", func(t *testing.T) {
		t.Parallel()

		var got *domain.Vehicle
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			CreateVehicle(mock.Anything, mock.Anything).
			Run(func(_ context.Context, v *domain.Vehicle) {
				v.ID = vehicleID
				got = v
			}).
			Return(nil).
			Once()

		resp := newVehicleAPI(t, ms).Post("/api/v1/vehicles", vehicleBody())
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
		require.NotNil(t, got)

		assert.Equal(t, "4T1G11AK5LU123456", got.VIN)
		assert.Equal(t, domain.BodySUV, got.BodyType)
		assert.Equal(t, domain.TransmissionAutomatic, got.Transmission)
		assert.Equal(t, domain.FuelGasoline, got.FuelType)
		assert.Equal(t, domain.DriveAWD, got.Drivetrain)
		assert.Equal(t, "used", got.Condition)
		assert.Equal(t, domain.StatusAvailable, got.Status)
		assert.Contains(t, resp.Body.String(), vehicleID)
	})

	t.Run("empty drivetrain stays empty", func(t *testing.T) {
		t.Parallel()

		body := vehicleBody()
		delete(body, "drivetrain")

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			CreateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
				return v.Drivetrain == ""
			})).
			Return(nil).
			Once()

		resp := newVehicleAPI(t, ms).Post("/api/v1/vehicles", body)
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	})

	errTests := []struct {
		name       string
		mutate     func(map[string]any)
		storeErr   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "year out of range",
			mutate:     func(b map[string]any) { b["year"] = 1850 },
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "year must be between",
		},
		{
			name: "reports every problem",
			mutate: func(b map[string]any) {
				b["make"] = " "
				b["price"] = -1
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "price must not be negative",
		},
		{
			name: "needs vin or stock number",
			mutate: func(b map[string]any) {
				b["vin"] = " "
				delete(b, "stock_number")
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "vin or stock_number is required",
		},
		{
			name:       "duplicate vin",
			storeErr:   fmt.Errorf("vin 4T1G11AK5LU123456: %w", store.ErrConflict),
			wantStatus: http.StatusConflict,
			wantBody:   "already exists",
		},
		{
			name:       "duplicate stock number",
			storeErr:   fmt.Errorf("stock number LT2291: %w", store.ErrConflict),
			wantStatus: http.StatusConflict,
			wantBody:   "stock number LT2291: already exists",
		},
		{
			name:       "unknown dealership",
			storeErr:   fmt.Errorf("%s: %w", dealerID, store.ErrDealershipNotFound),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "dealership not found",
		},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := vehicleBody()
			if tt.mutate != nil {
				tt.mutate(body)
			}

			ms := storeMocks.NewMockStore(t)
			if tt.storeErr != nil {
				ms.EXPECT().CreateVehicle(mock.Anything, mock.Anything).Return(tt.storeErr).Once()
			}

			resp := newVehicleAPI(t, ms).Post("/api/v1/vehicles", body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestUpdateVehicle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "updates",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					UpdateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
						return v.ID == vehicleID
					})).
					Return(nil).
					Once()
				m.EXPECT().GetVehicle(mock.Anything, vehicleID).Return(camry(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().UpdateVehicle(mock.Anything, mock.Anything).Return(store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "vin conflict",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().UpdateVehicle(mock.Anything, mock.Anything).Return(store.ErrConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newVehicleAPI(t, ms).Put("/api/v1/vehicles/"+vehicleID, vehicleBody())
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestUpdateVehicle_CannotBlankIdentifiers(t *testing.T) {
	t.Parallel()

	body := vehicleBody()
	body["vin"] = ""
	body["stock_number"] = "  "

	ms := storeMocks.NewMockStore(t)
	resp := newVehicleAPI(t, ms).Put("/api/v1/vehicles/"+vehicleID, body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), "vin or stock_number is required")

	body["stock_number"] = "LT2291"
	ms.EXPECT().
		UpdateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.VIN == "" && v.StockNumber == "LT2291"
		})).
		Return(nil).
		Once()
	ms.EXPECT().GetVehicle(mock.Anything, vehicleID).Return(camry(), nil).Once()

	resp = newVehicleAPI(t, ms).Put("/api/v1/vehicles/"+vehicleID, body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestDeleteVehicle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deletes", wantStatus: http.StatusNoContent},
		{name: "not found", err: store.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store error", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().DeleteVehicle(mock.Anything, vehicleID).Return(tt.err).Once()

			resp := newVehicleAPI(t, ms).Delete("/api/v1/vehicles/" + vehicleID)
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestBulkCreateVehicles(t *testing.T) {
	t.Parallel()

	good := vehicleBody()
	dup := vehicleBody()
	dup["vin"] = "2T1BURHE0JC000001"
	invalid := vehicleBody()
	invalid["vin"] = "BADROW"
	delete(invalid, "model")

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		CreateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.VIN == "4T1G11AK5LU123456"
		})).
		Run(func(_ context.Context, v *domain.Vehicle) { v.ID = vehicleID }).
		Return(nil).
		Once()
	ms.EXPECT().
		CreateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.VIN == "2T1BURHE0JC000001"
		})).
		Return(fmt.Errorf("vin 2T1BURHE0JC000001: %w", store.ErrConflict)).
		Once()

	resp := newVehicleAPI(t, ms).Post("/api/v1/vehicles/bulk", map[string]any{
		"vehicles": []any{good, dup, invalid},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := resp.Body.String()
	assert.Contains(t, body, `"created":1`)
	assert.Contains(t, body, `"failed":2`)
	assert.Contains(t, body, `"index":1`)
	assert.Contains(t, body, "already exists")
	assert.Contains(t, body, `"index":2`)
	assert.Contains(t, body, `"vin":"BADROW"`)
	assert.Contains(t, body, "model is required")
}

func TestBulkCreateVehicles_StockNumberConflict(t *testing.T) {
	t.Parallel()

	first := vehicleBody()
	first["stock_number"] = "LT2291"
	second := vehicleBody()
	second["vin"] = "2T1BURHE0JC000001"
	second["stock_number"] = "LT2291"

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		CreateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.VIN == "4T1G11AK5LU123456"
		})).
		Return(nil).
		Once()
	ms.EXPECT().
		CreateVehicle(mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.VIN == "2T1BURHE0JC000001" && v.StockNumber == "LT2291"
		})).
		Return(fmt.Errorf("stock number LT2291: %w", store.ErrConflict)).
		Once()

	resp := newVehicleAPI(t, ms).Post("/api/v1/vehicles/bulk", map[string]any{
		"vehicles": []any{first, second},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := resp.Body.String()
	assert.Contains(t, body, `"created":1`)
	assert.Contains(t, body, `"failed":1`)
	assert.Contains(t, body, `"index":1`)
	assert.Contains(t, body, "stock number LT2291: already exists")
}

func TestBulkCreateVehicles_EmptyBatchRejected(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	resp := newVehicleAPI(t, ms).Post("/api/v1/vehicles/bulk", map[string]any{"vehicles": []any{}})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
