package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	"github.com/donaldgifford/dealer-appraisal/pkg/normalize"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// Inspection defaults applied when the appraiser did not measure.
const (
	DefaultBrakePadMM  = 4.0
	DefaultTireTreadMM = 5.0
)

var (
	// ErrMissingField is returned when a required vehicle field is absent.
	// The wrapped message names the first missing field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField is returned when a field is present but out of range.
	ErrInvalidField = errors.New("invalid field")
)

// VehicleFields describes the vehicle as entered or decoded from a VIN.
// Attribute strings are free-form and normalized before valuation.
type VehicleFields struct {
	VIN                string  `json:"vin,omitempty"                 doc:"Vehicle identification number"`
	Make               string  `json:"make,omitempty"                doc:"Manufacturer, e.g. Toyota"`
	Model              string  `json:"model,omitempty"               doc:"Model, e.g. Camry"`
	Trim               string  `json:"trim,omitempty"                doc:"Trim level"`
	Year               *int    `json:"year,omitempty"                doc:"Model year"`
	Kilometers         *int    `json:"kilometers,omitempty"          doc:"Odometer reading in kilometers"`
	BodyType           string  `json:"body_type,omitempty"           doc:"Body style, free-form (e.g. 'Sport Utility')"`
	Transmission       string  `json:"transmission,omitempty"        doc:"Transmission, free-form"`
	FuelType           string  `json:"fuel_type,omitempty"           doc:"Fuel type, free-form"`
	Drivetrain         string  `json:"drivetrain,omitempty"          doc:"Drivetrain, free-form"`
	EngineCylinders    int     `json:"engine_cylinders,omitempty"    doc:"Engine cylinder count"`
	EngineDisplacement float64 `json:"engine_displacement,omitempty" doc:"Engine displacement in litres"`
	MSRP               float64 `json:"msrp,omitempty"                doc:"Original MSRP; 35000 when unknown"`
	Province           string  `json:"province,omitempty"            doc:"Two-letter Canadian province code"`
}

// ConditionFields is the inspection result. Simple is the quick-mode picker
// and only applies when Grade is absent.
type ConditionFields struct {
	Grade                *int             `json:"grade,omitempty"                 doc:"NAAA condition grade 0-5"`
	Simple               string           `json:"simple,omitempty"                doc:"Quick condition: excellent, good, fair or poor"`
	BrakePadMM           *float64         `json:"brake_pad_mm,omitempty"          doc:"Brake pad thickness in mm (default 4)"`
	TireTreadMM          *float64         `json:"tire_tread_mm,omitempty"         doc:"Tire tread depth in mm (default 5)"`
	CheckEngineLight     bool             `json:"check_engine_light,omitempty"`
	RoughIdle            bool             `json:"rough_idle,omitempty"`
	ExcessiveSmoke       bool             `json:"excessive_smoke,omitempty"`
	TransmissionSlipping bool             `json:"transmission_slipping,omitempty"`
	Rust                 domain.RustLevel `json:"rust,omitempty"                  enum:"none,minor,moderate,severe"`
}

// HistoryFields is the provenance record.
type HistoryFields struct {
	Title                 domain.TitleType        `json:"title,omitempty"                   enum:"clean,rebuilt,salvage,flood"`
	Accident              domain.AccidentSeverity `json:"accident,omitempty"                enum:"none,cosmetic,minor,moderate,major,severe"`
	OdometerTampering     bool                    `json:"odometer_tampering,omitempty"`
	ActiveRecalls         bool                    `json:"active_recalls,omitempty"`
	FrameDamage           bool                    `json:"frame_damage,omitempty"`
	FrameDamageRepaired   bool                    `json:"frame_damage_repaired,omitempty"`
	Stolen                bool                    `json:"stolen,omitempty"`
	PreviousRental        bool                    `json:"previous_rental,omitempty"`
	PreviousTaxi          bool                    `json:"previous_taxi,omitempty"`
	MissingServiceRecords bool                    `json:"missing_service_records,omitempty"`
	Specialty             bool                    `json:"specialty,omitempty"`
	RustFreeHistory       bool                    `json:"rust_free_history,omitempty"       doc:"Vehicle spent its life in a rust-free region"`
	OwnerCount            int                     `json:"owner_count,omitempty"             doc:"Number of previous owners (default 1)"`
}

// Request is one appraisal request.
type Request struct {
	Vehicle   VehicleFields   `json:"vehicle,omitempty"`
	Condition ConditionFields `json:"condition,omitempty"`
	History   HistoryFields   `json:"history,omitempty"`

	// Policy overrides the configured business policy when set.
	Policy *appraise.Policy `json:"policy,omitempty"`

	Reconditioning *float64 `json:"reconditioning,omitempty" doc:"Reconditioning cost override in dollars"`
	ProfitMargin   *float64 `json:"profit_margin,omitempty"  doc:"Profit margin override in dollars"`
}

// Validate checks required fields in a fixed order and reports the first one
// missing: year, make, model, kilometers, body type, transmission.
func (r *Request) Validate() error {
	v := &r.Vehicle
	switch {
	case v.Year == nil || *v.Year == 0:
		return missing("year")
	case strings.TrimSpace(v.Make) == "":
		return missing("make")
	case strings.TrimSpace(v.Model) == "":
		return missing("model")
	case v.Kilometers == nil:
		return missing("kilometers")
	case strings.TrimSpace(v.BodyType) == "":
		return missing("body_type")
	case strings.TrimSpace(v.Transmission) == "":
		return missing("transmission")
	}

	var errs []error
	if *v.Kilometers < 0 {
		errs = append(errs, invalid("kilometers", "must not be negative"))
	}
	if g := r.Condition.Grade; g != nil && (*g < 0 || *g > 5) {
		errs = append(errs, invalid("condition.grade", "must be between 0 and 5"))
	}
	if r.History.OwnerCount < 0 {
		errs = append(errs, invalid("history.owner_count", "must not be negative"))
	}
	return errors.Join(errs...)
}

// input converts a validated request into an appraisal input, normalizing
// free-form attributes and filling inspection defaults.
func (r *Request) input(policy appraise.Policy) *appraise.Input {
	v := &r.Vehicle
	in := &appraise.Input{
		Vehicle: appraise.Vehicle{
			VIN:                strings.ToUpper(strings.TrimSpace(v.VIN)),
			Make:               strings.TrimSpace(v.Make),
			Model:              strings.TrimSpace(v.Model),
			Trim:               strings.TrimSpace(v.Trim),
			Year:               *v.Year,
			Kilometers:         *v.Kilometers,
			BodyType:           normalize.BodyType(v.BodyType),
			Transmission:       normalize.Transmission(v.Transmission),
			FuelType:           normalize.FuelType(v.FuelType),
			Drivetrain:         normalize.Drivetrain(v.Drivetrain),
			EngineCylinders:    v.EngineCylinders,
			EngineDisplacement: v.EngineDisplacement,
			MSRP:               v.MSRP,
			Province:           strings.ToUpper(strings.TrimSpace(v.Province)),
		},
		Condition:      r.condition(),
		History:        r.history(),
		Policy:         policy,
		Reconditioning: r.Reconditioning,
		ProfitMargin:   r.ProfitMargin,
	}
	if r.Policy != nil {
		in.Policy = *r.Policy
	}
	return in
}

func (r *Request) condition() appraise.Condition {
	c := &r.Condition
	out := appraise.Condition{
		Grade:                normalize.SimpleConditionGrade(c.Simple),
		BrakePadMM:           DefaultBrakePadMM,
		TireTreadMM:          DefaultTireTreadMM,
		CheckEngineLight:     c.CheckEngineLight,
		RoughIdle:            c.RoughIdle,
		ExcessiveSmoke:       c.ExcessiveSmoke,
		TransmissionSlipping: c.TransmissionSlipping,
		Rust:                 c.Rust,
	}
	if c.Grade != nil {
		out.Grade = *c.Grade
	}
	if c.BrakePadMM != nil {
		out.BrakePadMM = *c.BrakePadMM
	}
	if c.TireTreadMM != nil {
		out.TireTreadMM = *c.TireTreadMM
	}
	if out.Rust == "" {
		out.Rust = domain.RustNone
	}
	return out
}

func (r *Request) history() appraise.History {
	h := &r.History
	out := appraise.History{
		Title:                 h.Title,
		Accident:              h.Accident,
		OdometerTampering:     h.OdometerTampering,
		ActiveRecalls:         h.ActiveRecalls,
		FrameDamage:           h.FrameDamage,
		FrameDamageRepaired:   h.FrameDamageRepaired,
		Stolen:                h.Stolen,
		PreviousRental:        h.PreviousRental,
		PreviousTaxi:          h.PreviousTaxi,
		MissingServiceRecords: h.MissingServiceRecords,
		Specialty:             h.Specialty,
		RustFreeHistory:       h.RustFreeHistory,
		OwnerCount:            max(h.OwnerCount, 1),
	}
	if out.Title == "" {
		out.Title = domain.TitleClean
	}
	if out.Accident == "" {
		out.Accident = domain.AccidentNone
	}
	return out
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidField, field, reason)
}
