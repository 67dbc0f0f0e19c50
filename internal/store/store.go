// Package store defines the datastore abstraction for dealer-appraisal.
// HTTP handlers and the appraisal engine depend on the Store interface,
// never on the Postgres implementation, so they can be tested with mocks.
package store

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// ErrNotFound is returned when a dealership or vehicle does not exist.
var ErrNotFound = errors.New("not found")

// ErrDealershipNotFound is returned when a vehicle write references a
// dealership that does not exist. It matches ErrNotFound.
var ErrDealershipNotFound = fmt.Errorf("dealership %w", ErrNotFound)

// ErrConflict is returned when a write would duplicate a VIN or stock number.
var ErrConflict = errors.New("already exists")

// VehicleQuery defines optional filters for inventory queries.
type VehicleQuery struct {
	DealershipID *string
	Make         *string
	Model        *string
	Status       *string
	MinYear      *int
	MaxYear      *int
	Search       string // free text across VIN, make, model, trim, color and notes
	Limit        int    // default 50
	Offset       int
	OrderBy      string // "created_at", "price", "year", "kilometers"
}

// Store defines all data access operations for dealer-appraisal.
type Store interface {
	// Dealerships
	CreateDealership(ctx context.Context, d *domain.Dealership) error
	GetDealership(ctx context.Context, id string) (*domain.Dealership, error)
	ListDealerships(ctx context.Context) ([]domain.Dealership, error)
	UpdateDealership(ctx context.Context, d *domain.Dealership) error
	DeleteDealership(ctx context.Context, id string) error
	DealershipNames(ctx context.Context, ids []string) (map[string]string, error)

	// Vehicles
	CreateVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	GetVehicleByVIN(ctx context.Context, vin string) (*domain.Vehicle, error)
	GetVehicleByStockNumber(ctx context.Context, stockNumber string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, q *VehicleQuery) ([]domain.Vehicle, int, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error

	// Comparables
	ListComparables(ctx context.Context, vehicleMake, model string) ([]domain.Vehicle, error)
	ListInventory(ctx context.Context) ([]domain.Vehicle, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
