package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/dealer-appraisal/internal/store"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// NameInvalidator drops cached dealership names after a write.
type NameInvalidator interface {
	Invalidate(ctx context.Context, ids ...string) error
}

// DealershipsHandler handles Dealership CRUD operations.
type DealershipsHandler struct {
	store store.Store
	names NameInvalidator
	log   *slog.Logger
}

// DealershipsOption configures a DealershipsHandler.
type DealershipsOption func(*DealershipsHandler)

// WithNameInvalidator invalidates cached names on update and delete.
func WithNameInvalidator(n NameInvalidator) DealershipsOption {
	return func(h *DealershipsHandler) {
		h.names = n
	}
}

// WithDealershipsLogger sets a custom logger.
func WithDealershipsLogger(l *slog.Logger) DealershipsOption {
	return func(h *DealershipsHandler) {
		h.log = l
	}
}

// NewDealershipsHandler creates a new DealershipsHandler.
func NewDealershipsHandler(s store.Store, opts ...DealershipsOption) *DealershipsHandler {
	h := &DealershipsHandler{store: s, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// --- Input/Output types ---

// DealershipBody is the writable part of a dealership.
type DealershipBody struct {
	Name       string `json:"name"        minLength:"1" example:"Lakeshore Toyota"`
	Location   string `json:"location"    minLength:"1" example:"Mississauga"`
	Province   string `json:"province"    minLength:"2" maxLength:"2" example:"ON"`
	Address    string `json:"address"     minLength:"1" example:"1200 Lakeshore Rd E"`
	PostalCode string `json:"postal_code" minLength:"1" example:"L5E 1E9"`
	Phone      string `json:"phone"       minLength:"1" example:"905-555-0142"`
}

func (b *DealershipBody) toDomain() (*domain.Dealership, error) {
	d := &domain.Dealership{
		Name:       strings.TrimSpace(b.Name),
		Location:   strings.TrimSpace(b.Location),
		Province:   strings.ToUpper(strings.TrimSpace(b.Province)),
		Address:    strings.TrimSpace(b.Address),
		PostalCode: strings.ToUpper(strings.TrimSpace(b.PostalCode)),
		Phone:      strings.TrimSpace(b.Phone),
	}

	var missing []string
	for _, f := range []struct{ name, val string }{
		{"name", d.Name},
		{"location", d.Location},
		{"province", d.Province},
		{"address", d.Address},
		{"postal_code", d.PostalCode},
		{"phone", d.Phone},
	} {
		if f.val == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.New(strings.Join(missing, ", ") + " required")
	}
	return d, nil
}

// ListDealershipsOutput is the response for listing dealerships.
type ListDealershipsOutput struct {
	Body []domain.Dealership
}

// DealershipIDInput identifies a dealership by path.
type DealershipIDInput struct {
	ID string `path:"id" doc:"Dealership UUID"`
}

// DealershipOutput wraps a single dealership.
type DealershipOutput struct {
	Body domain.Dealership
}

// CreateDealershipInput is the input for creating a dealership.
type CreateDealershipInput struct {
	Body DealershipBody
}

// UpdateDealershipInput is the input for replacing a dealership.
type UpdateDealershipInput struct {
	ID   string `path:"id" doc:"Dealership UUID"`
	Body DealershipBody
}

// --- Handlers ---

// ListDealerships returns all dealerships ordered by name.
func (h *DealershipsHandler) ListDealerships(
	ctx context.Context,
	_ *struct{},
) (*ListDealershipsOutput, error) {
	ds, err := h.store.ListDealerships(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing dealerships: " + err.Error())
	}
	if ds == nil {
		ds = []domain.Dealership{}
	}
	return &ListDealershipsOutput{Body: ds}, nil
}

// GetDealership returns a dealership by ID.
func (h *DealershipsHandler) GetDealership(
	ctx context.Context,
	input *DealershipIDInput,
) (*DealershipOutput, error) {
	d, err := h.store.GetDealership(ctx, input.ID)
	if err != nil {
		return nil, storeError(err, "dealership", "getting dealership")
	}
	return &DealershipOutput{Body: *d}, nil
}

// CreateDealership adds a dealership.
func (h *DealershipsHandler) CreateDealership(
	ctx context.Context,
	input *CreateDealershipInput,
) (*DealershipOutput, error) {
	d, err := input.Body.toDomain()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	if err := h.store.CreateDealership(ctx, d); err != nil {
		return nil, huma.Error500InternalServerError("creating dealership: " + err.Error())
	}
	return &DealershipOutput{Body: *d}, nil
}

// UpdateDealership replaces a dealership's details.
func (h *DealershipsHandler) UpdateDealership(
	ctx context.Context,
	input *UpdateDealershipInput,
) (*DealershipOutput, error) {
	d, err := input.Body.toDomain()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	d.ID = input.ID

	if err := h.store.UpdateDealership(ctx, d); err != nil {
		return nil, storeError(err, "dealership", "updating dealership")
	}
	h.invalidate(ctx, d.ID)

	updated, err := h.store.GetDealership(ctx, d.ID)
	if err != nil {
		return nil, storeError(err, "dealership", "getting dealership")
	}
	return &DealershipOutput{Body: *updated}, nil
}

// DeleteDealership removes a dealership and its inventory.
func (h *DealershipsHandler) DeleteDealership(
	ctx context.Context,
	input *DealershipIDInput,
) (*struct{}, error) {
	if err := h.store.DeleteDealership(ctx, input.ID); err != nil {
		return nil, storeError(err, "dealership", "deleting dealership")
	}
	h.invalidate(ctx, input.ID)
	return nil, nil
}

func (h *DealershipsHandler) invalidate(ctx context.Context, id string) {
	if h.names == nil {
		return
	}
	if err := h.names.Invalidate(ctx, id); err != nil {
		h.log.Warn("invalidating cached dealership name", "dealership_id", id, "error", err)
	}
}

// storeError maps store sentinels to HTTP errors.
func storeError(err error, resource, action string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(resource + " not found")
	case errors.Is(err, store.ErrConflict):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error500InternalServerError(action + ": " + err.Error())
	}
}

// RegisterDealershipRoutes registers dealership endpoints with the Huma API.
func RegisterDealershipRoutes(api huma.API, h *DealershipsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-dealerships",
		Method:      http.MethodGet,
		Path:        "/api/v1/dealerships",
		Summary:     "List dealerships",
		Tags:        []string{"dealerships"},
	}, h.ListDealerships)

	huma.Register(api, huma.Operation{
		OperationID: "get-dealership",
		Method:      http.MethodGet,
		Path:        "/api/v1/dealerships/{id}",
		Summary:     "Get a dealership by ID",
		Tags:        []string{"dealerships"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetDealership)

	huma.Register(api, huma.Operation{
		OperationID:   "create-dealership",
		Method:        http.MethodPost,
		Path:          "/api/v1/dealerships",
		Summary:       "Create a dealership",
		Tags:          []string{"dealerships"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity},
	}, h.CreateDealership)

	huma.Register(api, huma.Operation{
		OperationID: "update-dealership",
		Method:      http.MethodPut,
		Path:        "/api/v1/dealerships/{id}",
		Summary:     "Update a dealership",
		Tags:        []string{"dealerships"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.UpdateDealership)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-dealership",
		Method:        http.MethodDelete,
		Path:          "/api/v1/dealerships/{id}",
		Summary:       "Delete a dealership",
		Description:   "Deletes a dealership and every vehicle it owns.",
		Tags:          []string{"dealerships"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteDealership)
}
