// Package domain defines the core business types for the dealer appraisal service.
package domain

import (
	"strconv"
	"time"
)

// BodyType is the normalized vehicle body class.
type BodyType string

// Body type constants.
const (
	BodySedan       BodyType = "sedan"
	BodySUV         BodyType = "suv"
	BodyTruck       BodyType = "truck"
	BodyCoupe       BodyType = "coupe"
	BodyHatchback   BodyType = "hatchback"
	BodyVan         BodyType = "van"
	BodyConvertible BodyType = "convertible"
	BodyWagon       BodyType = "wagon"
)

// Transmission is the normalized transmission type.
type Transmission string

// Transmission constants.
const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
	TransmissionCVT       Transmission = "cvt"
)

// FuelType is the normalized fuel type.
type FuelType string

// Fuel type constants.
const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelFlex     FuelType = "flex"
)

// Drivetrain is the normalized drivetrain layout.
type Drivetrain string

// Drivetrain constants.
const (
	DriveFWD Drivetrain = "fwd"
	DriveRWD Drivetrain = "rwd"
	DriveAWD Drivetrain = "awd"
	Drive4WD Drivetrain = "4wd"
)

// TitleType is the registration title brand.
type TitleType string

// Title type constants.
const (
	TitleClean   TitleType = "clean"
	TitleRebuilt TitleType = "rebuilt"
	TitleSalvage TitleType = "salvage"
	TitleFlood   TitleType = "flood"
)

// AccidentSeverity grades the worst reported accident.
type AccidentSeverity string

// Accident severity constants.
const (
	AccidentNone     AccidentSeverity = "none"
	AccidentCosmetic AccidentSeverity = "cosmetic"
	AccidentMinor    AccidentSeverity = "minor"
	AccidentModerate AccidentSeverity = "moderate"
	AccidentMajor    AccidentSeverity = "major"
	AccidentSevere   AccidentSeverity = "severe"
)

// RustLevel grades visible body and frame corrosion.
type RustLevel string

// Rust level constants.
const (
	RustNone     RustLevel = "none"
	RustMinor    RustLevel = "minor"
	RustModerate RustLevel = "moderate"
	RustSevere   RustLevel = "severe"
)

// Decision is the acquisition outcome of an appraisal.
type Decision string

// Decision constants.
const (
	DecisionBuy       Decision = "buy"
	DecisionWholesale Decision = "wholesale"
	DecisionReject    Decision = "reject"
)

// ValuationMethod records which strategy produced the base value.
type ValuationMethod string

// Valuation method constants.
const (
	MethodInventory    ValuationMethod = "inventory"
	MethodHybrid       ValuationMethod = "hybrid"
	MethodDepreciation ValuationMethod = "depreciation"
)

// VehicleStatus is the lifecycle state of an inventory vehicle.
type VehicleStatus string

// Vehicle status constants.
const (
	StatusAvailable VehicleStatus = "available"
	StatusPending   VehicleStatus = "pending"
	StatusSold      VehicleStatus = "sold"
)

// Dealership is a rooftop that owns inventory.
type Dealership struct {
	ID         string    `json:"id"          db:"id"`
	Name       string    `json:"name"        db:"name"`
	Location   string    `json:"location"    db:"location"`
	Province   string    `json:"province"    db:"province"`
	Address    string    `json:"address"     db:"address"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
	Phone      string    `json:"phone"       db:"phone"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// Vehicle is a single inventory row. Inventory rows double as the
// comparable pool for appraisals.
type Vehicle struct {
	ID           string `json:"id"                     db:"id"`
	DealershipID string `json:"dealership_id"          db:"dealership_id"`
	VIN          string `json:"vin,omitempty"          db:"vin"`
	StockNumber  string `json:"stock_number,omitempty" db:"stock_number"`
	Condition    string `json:"condition"              db:"condition"`

	// Identity
	Make  string `json:"make"  db:"make"`
	Model string `json:"model" db:"model"`
	Trim  string `json:"trim"  db:"trim"`
	Year  int    `json:"year"  db:"year"`
	Color string `json:"color" db:"color"`

	// Pricing and usage
	Price      float64 `json:"price"      db:"price"`
	Kilometers int     `json:"kilometers" db:"kilometers"`

	// Specification
	Transmission       Transmission `json:"transmission"                  db:"transmission"`
	FuelType           FuelType     `json:"fuel_type"                     db:"fuel_type"`
	BodyType           BodyType     `json:"body_type"                     db:"body_type"`
	Drivetrain         Drivetrain   `json:"drivetrain,omitempty"          db:"drivetrain"`
	EngineCylinders    *int         `json:"engine_cylinders,omitempty"    db:"engine_cylinders"`
	EngineDisplacement *float64     `json:"engine_displacement,omitempty" db:"engine_displacement"`
	Features           []string     `json:"features,omitempty"            db:"features"`

	// Listing
	ListingLink  string        `json:"listing_link"            db:"listing_link"`
	CarfaxLink   string        `json:"carfax_link"             db:"carfax_link"`
	CarfaxStatus string        `json:"carfax_status,omitempty" db:"carfax_status"`
	Notes        string        `json:"notes"                   db:"notes"`
	Status       VehicleStatus `json:"status"                  db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Title returns the display headline for the vehicle, e.g. "2021 Toyota Camry SE".
func (v *Vehicle) Title() string {
	s := strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
	if v.Trim != "" {
		s += " " + v.Trim
	}
	return s
}
