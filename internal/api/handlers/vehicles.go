package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-appraisal/internal/store"
	"github.com/donaldgifford/dealer-appraisal/pkg/normalize"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

const (
	minVehicleYear = 1900
	maxBulkRows    = 1000
	defaultCond    = "used"
)

// VehiclesHandler handles inventory vehicle operations.
type VehiclesHandler struct {
	store store.Store
	now   func() time.Time
}

// NewVehiclesHandler creates a new VehiclesHandler.
func NewVehiclesHandler(s store.Store) *VehiclesHandler {
	return &VehiclesHandler{store: s, now: time.Now}
}

// --- Input/Output types ---

// VehicleBody is the writable part of an inventory vehicle. Body type,
// transmission, fuel type and drivetrain accept free-form descriptions and are
// normalized on write. Required fields are checked by toDomain rather than the
// schema so bulk imports can report them per row.
type VehicleBody struct {
	DealershipID string `json:"dealership_id,omitempty" doc:"Owning dealership UUID"`
	VIN          string `json:"vin,omitempty"          maxLength:"17"`
	StockNumber  string `json:"stock_number,omitempty"`
	Condition    string `json:"condition,omitempty"    doc:"Defaults to used"`

	Make  string `json:"make,omitempty"  example:"Toyota"`
	Model string `json:"model,omitempty" example:"Camry"`
	Trim  string `json:"trim,omitempty"  example:"SE"`
	Year  int    `json:"year,omitempty"  example:"2020"`
	Color string `json:"color,omitempty"`

	Price      float64 `json:"price,omitempty"      example:"24995"`
	Kilometers int     `json:"kilometers,omitempty" example:"60000"`

	Transmission       string   `json:"transmission,omitempty"        example:"8-Speed Automatic"`
	FuelType           string   `json:"fuel_type,omitempty"           example:"Gasoline"`
	BodyType           string   `json:"body_type,omitempty"           example:"Sedan"`
	Drivetrain         string   `json:"drivetrain,omitempty"          example:"Front-Wheel Drive"`
	EngineCylinders    *int     `json:"engine_cylinders,omitempty"`
	EngineDisplacement *float64 `json:"engine_displacement,omitempty"`
	Features           []string `json:"features,omitempty"`

	ListingLink  string `json:"listing_link,omitempty"`
	CarfaxLink   string `json:"carfax_link,omitempty"`
	CarfaxStatus string `json:"carfax_status,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status,omitempty" enum:"available,pending,sold"`
}

// toDomain validates the body and converts it to a normalized vehicle.
// Every problem found is reported.
func (b *VehicleBody) toDomain(now time.Time) (*domain.Vehicle, error) {
	var errs []error
	if strings.TrimSpace(b.DealershipID) == "" {
		errs = append(errs, errors.New("dealership_id is required"))
	}
	if strings.TrimSpace(b.VIN) == "" && strings.TrimSpace(b.StockNumber) == "" {
		errs = append(errs, errors.New("vin or stock_number is required"))
	}
	if strings.TrimSpace(b.Make) == "" {
		errs = append(errs, errors.New("make is required"))
	}
	if strings.TrimSpace(b.Model) == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if maxYear := now.Year() + 1; b.Year < minVehicleYear || b.Year > maxYear {
		errs = append(errs, fmt.Errorf("year must be between %d and %d", minVehicleYear, maxYear))
	}
	if b.Price < 0 {
		errs = append(errs, errors.New("price must not be negative"))
	}
	if b.Kilometers < 0 {
		errs = append(errs, errors.New("kilometers must not be negative"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	v := &domain.Vehicle{
		DealershipID:       strings.TrimSpace(b.DealershipID),
		VIN:                strings.ToUpper(strings.TrimSpace(b.VIN)),
		StockNumber:        strings.TrimSpace(b.StockNumber),
		Condition:          strings.ToLower(strings.TrimSpace(b.Condition)),
		Make:               strings.TrimSpace(b.Make),
		Model:              strings.TrimSpace(b.Model),
		Trim:               strings.TrimSpace(b.Trim),
		Year:               b.Year,
		Color:              strings.TrimSpace(b.Color),
		Price:              b.Price,
		Kilometers:         b.Kilometers,
		Transmission:       normalize.Transmission(b.Transmission),
		FuelType:           normalize.FuelType(b.FuelType),
		BodyType:           normalize.BodyType(b.BodyType),
		EngineCylinders:    b.EngineCylinders,
		EngineDisplacement: b.EngineDisplacement,
		Features:           b.Features,
		ListingLink:        b.ListingLink,
		CarfaxLink:         b.CarfaxLink,
		CarfaxStatus:       b.CarfaxStatus,
		Notes:              b.Notes,
		Status:             domain.VehicleStatus(b.Status),
	}
	if strings.TrimSpace(b.Drivetrain) != "" {
		v.Drivetrain = normalize.Drivetrain(b.Drivetrain)
	}
	if v.Condition == "" {
		v.Condition = defaultCond
	}
	if v.Status == "" {
		v.Status = domain.StatusAvailable
	}
	return v, nil
}

// ListVehiclesInput holds inventory filters.
type ListVehiclesInput struct {
	DealershipID string `query:"dealership_id" doc:"Filter by dealership UUID"`
	Make         string `query:"make"          doc:"Filter by make (case-insensitive)"`
	Model        string `query:"model"         doc:"Filter by model (case-insensitive)"`
	Status       string `query:"status"        doc:"Filter by status"                 enum:"available,pending,sold,"`
	MinYear      int    `query:"min_year"      doc:"Minimum model year"               minimum:"0"`
	MaxYear      int    `query:"max_year"      doc:"Maximum model year"               minimum:"0"`
	Search       string `query:"q"             doc:"Free-text search"`
	Limit        int    `query:"limit"         doc:"Number of results (default 50)"   minimum:"0" maximum:"500"`
	Offset       int    `query:"offset"        doc:"Pagination offset"                minimum:"0"`
	OrderBy      string `query:"order_by"      doc:"Sort field"                       enum:"created_at,price,year,kilometers,"`
}

// ListVehiclesOutput is a page of inventory.
type ListVehiclesOutput struct {
	Body struct {
		Vehicles []domain.Vehicle `json:"vehicles"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// VehicleIDInput identifies a vehicle by path.
type VehicleIDInput struct {
	ID string `path:"id" doc:"Vehicle UUID"`
}

// VehicleVINInput identifies a vehicle by VIN.
type VehicleVINInput struct {
	VIN string `path:"vin" doc:"Vehicle identification number"`
}

// VehicleStockInput identifies a vehicle by dealer stock number.
type VehicleStockInput struct {
	StockNumber string `path:"stock_number" doc:"Dealer stock number"`
}

// VehicleOutput wraps a single vehicle.
type VehicleOutput struct {
	Body domain.Vehicle
}

// CreateVehicleInput is the input for adding a vehicle.
type CreateVehicleInput struct {
	Body VehicleBody
}

// UpdateVehicleInput is the input for replacing a vehicle.
type UpdateVehicleInput struct {
	ID   string `path:"id" doc:"Vehicle UUID"`
	Body VehicleBody
}

// BulkVehiclesInput is a batch of vehicles to import.
type BulkVehiclesInput struct {
	Body struct {
		Vehicles []VehicleBody `json:"vehicles" minItems:"1" maxItems:"1000"`
	}
}

// BulkRowError reports why one row of a bulk import was rejected.
type BulkRowError struct {
	Index int    `json:"index"         doc:"Zero-based row index"`
	VIN   string `json:"vin,omitempty"`
	Error string `json:"error"`
}

// BulkVehiclesOutput summarizes a bulk import.
type BulkVehiclesOutput struct {
	Body struct {
		Created  int              `json:"created"`
		Failed   int              `json:"failed"`
		Vehicles []domain.Vehicle `json:"vehicles"`
		Errors   []BulkRowError   `json:"errors"`
	}
}

// --- Handlers ---

// ListVehicles returns inventory matching the filters.
func (h *VehiclesHandler) ListVehicles(
	ctx context.Context,
	input *ListVehiclesInput,
) (*ListVehiclesOutput, error) {
	q := &store.VehicleQuery{
		Search:  input.Search,
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.DealershipID != "" {
		q.DealershipID = &input.DealershipID
	}
	if input.Make != "" {
		q.Make = &input.Make
	}
	if input.Model != "" {
		q.Model = &input.Model
	}
	if input.Status != "" {
		q.Status = &input.Status
	}
	if input.MinYear != 0 {
		q.MinYear = &input.MinYear
	}
	if input.MaxYear != 0 {
		q.MaxYear = &input.MaxYear
	}

	vehicles, total, err := h.store.ListVehicles(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing vehicles: " + err.Error())
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}

	resp := &ListVehiclesOutput{}
	resp.Body.Vehicles = vehicles
	resp.Body.Total = total
	resp.Body.Limit = q.EffectiveLimit()
	resp.Body.Offset = q.Offset
	return resp, nil
}

// GetVehicle returns a vehicle by ID.
func (h *VehiclesHandler) GetVehicle(
	ctx context.Context,
	input *VehicleIDInput,
) (*VehicleOutput, error) {
	v, err := h.store.GetVehicle(ctx, input.ID)
	if err != nil {
		return nil, storeError(err, "vehicle", "getting vehicle")
	}
	return &VehicleOutput{Body: *v}, nil
}

// GetVehicleByVIN returns a vehicle by VIN.
func (h *VehiclesHandler) GetVehicleByVIN(
	ctx context.Context,
	input *VehicleVINInput,
) (*VehicleOutput, error) {
	v, err := h.store.GetVehicleByVIN(ctx, strings.ToUpper(strings.TrimSpace(input.VIN)))
	if err != nil {
		return nil, storeError(err, "vehicle", "getting vehicle")
	}
	return &VehicleOutput{Body: *v}, nil
}

// GetVehicleByStockNumber returns a vehicle by stock number.
func (h *VehiclesHandler) GetVehicleByStockNumber(
	ctx context.Context,
	input *VehicleStockInput,
) (*VehicleOutput, error) {
	v, err := h.store.GetVehicleByStockNumber(ctx, strings.TrimSpace(input.StockNumber))
	if err != nil {
		return nil, storeError(err, "vehicle", "getting vehicle")
	}
	return &VehicleOutput{Body: *v}, nil
}

// CreateVehicle adds a vehicle to inventory.
func (h *VehiclesHandler) CreateVehicle(
	ctx context.Context,
	input *CreateVehicleInput,
) (*VehicleOutput, error) {
	v, err := input.Body.toDomain(h.now())
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	if err := h.store.CreateVehicle(ctx, v); err != nil {
		return nil, writeError(err, "creating vehicle")
	}
	return &VehicleOutput{Body: *v}, nil
}

// UpdateVehicle replaces a vehicle. Omitted optional fields are cleared.
func (h *VehiclesHandler) UpdateVehicle(
	ctx context.Context,
	input *UpdateVehicleInput,
) (*VehicleOutput, error) {
	v, err := input.Body.toDomain(h.now())
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	v.ID = input.ID

	if err := h.store.UpdateVehicle(ctx, v); err != nil {
		return nil, writeError(err, "updating vehicle")
	}

	updated, err := h.store.GetVehicle(ctx, v.ID)
	if err != nil {
		return nil, storeError(err, "vehicle", "getting vehicle")
	}
	return &VehicleOutput{Body: *updated}, nil
}

// DeleteVehicle removes a vehicle.
func (h *VehiclesHandler) DeleteVehicle(
	ctx context.Context,
	input *VehicleIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteVehicle(ctx, input.ID); err != nil {
		return nil, storeError(err, "vehicle", "deleting vehicle")
	}
	return nil, nil
}

// BulkCreateVehicles imports a batch. Each row is validated and inserted on
// its own; failed rows are reported without aborting the batch.
func (h *VehiclesHandler) BulkCreateVehicles(
	ctx context.Context,
	input *BulkVehiclesInput,
) (*BulkVehiclesOutput, error) {
	resp := &BulkVehiclesOutput{}
	resp.Body.Vehicles = []domain.Vehicle{}
	resp.Body.Errors = []BulkRowError{}

	now := h.now()
	for i := range input.Body.Vehicles {
		row := &input.Body.Vehicles[i]

		v, err := row.toDomain(now)
		if err == nil {
			err = h.store.CreateVehicle(ctx, v)
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, huma.Error500InternalServerError("bulk import interrupted: " + ctxErr.Error())
			}
			resp.Body.Errors = append(resp.Body.Errors, BulkRowError{
				Index: i,
				VIN:   strings.ToUpper(strings.TrimSpace(row.VIN)),
				Error: err.Error(),
			})
			continue
		}
		resp.Body.Vehicles = append(resp.Body.Vehicles, *v)
	}

	resp.Body.Created = len(resp.Body.Vehicles)
	resp.Body.Failed = len(resp.Body.Errors)
	return resp, nil
}

// writeError maps write failures. A missing dealership is the caller's fault
// on create, so it surfaces as 422 rather than 404.
func writeError(err error, action string) error {
	if errors.Is(err, store.ErrDealershipNotFound) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return storeError(err, "vehicle", action)
}

// RegisterVehicleRoutes registers inventory endpoints with the Huma API.
func RegisterVehicleRoutes(api huma.API, h *VehiclesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-vehicles",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles",
		Summary:     "List vehicles",
		Description: "Returns inventory with optional filters for dealership, make, model, status, year range and free-text search.",
		Tags:        []string{"vehicles"},
	}, h.ListVehicles)

	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/{id}",
		Summary:     "Get a vehicle by ID",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetVehicle)

	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle-by-vin",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/vin/{vin}",
		Summary:     "Get a vehicle by VIN",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetVehicleByVIN)

	huma.Register(api, huma.Operation{
		OperationID: "get-vehicle-by-stock-number",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/stock/{stock_number}",
		Summary:     "Get a vehicle by stock number",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetVehicleByStockNumber)

	huma.Register(api, huma.Operation{
		OperationID:   "create-vehicle",
		Method:        http.MethodPost,
		Path:          "/api/v1/vehicles",
		Summary:       "Add a vehicle",
		Tags:          []string{"vehicles"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict, http.StatusUnprocessableEntity},
	}, h.CreateVehicle)

	huma.Register(api, huma.Operation{
		OperationID: "bulk-create-vehicles",
		Method:      http.MethodPost,
		Path:        "/api/v1/vehicles/bulk",
		Summary:     "Import vehicles in bulk",
		Description: "Inserts each valid row and reports per-row errors for the rest.",
		Tags:        []string{"vehicles"},
	}, h.BulkCreateVehicles)

	huma.Register(api, huma.Operation{
		OperationID: "update-vehicle",
		Method:      http.MethodPut,
		Path:        "/api/v1/vehicles/{id}",
		Summary:     "Update a vehicle",
		Tags:        []string{"vehicles"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity},
	}, h.UpdateVehicle)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-vehicle",
		Method:        http.MethodDelete,
		Path:          "/api/v1/vehicles/{id}",
		Summary:       "Delete a vehicle",
		Tags:          []string{"vehicles"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteVehicle)
}
