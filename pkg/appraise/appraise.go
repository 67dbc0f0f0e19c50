// Package appraise implements the vehicle appraisal valuation engine: it
// matches a described vehicle against comparable inventory, estimates a base
// value, runs the adjustment pipeline, classifies the acquisition decision and
// prices the trade-in offer.
//
// Everything here is a pure function of its inputs. Time and the
// days-on-market placeholder are injected through Options so results are
// reproducible.
package appraise

import (
	"math/rand/v2"
	"strings"
	"time"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

const (
	// DefaultMSRP is used by the depreciation model when no MSRP is supplied.
	DefaultMSRP = 35000.0

	// DefaultComparableLimit is how many ranked comparables feed valuation
	// and market statistics.
	DefaultComparableLimit = 20

	// DefaultTopComparables is how many comparables are returned for display.
	DefaultTopComparables = 10
)

// Vehicle describes the subject of an appraisal. Attribute enums must
// already be normalized.
type Vehicle struct {
	VIN                string
	Make               string
	Model              string
	Trim               string
	Year               int
	Kilometers         int
	BodyType           domain.BodyType
	Transmission       domain.Transmission
	FuelType           domain.FuelType
	Drivetrain         domain.Drivetrain
	EngineCylinders    int
	EngineDisplacement float64
	MSRP               float64 // zero means unknown
	Province           string
}

// Condition is the inspection-based condition assessment.
type Condition struct {
	Grade                int // NAAA 0-5
	BrakePadMM           float64
	TireTreadMM          float64
	CheckEngineLight     bool
	RoughIdle            bool
	ExcessiveSmoke       bool
	TransmissionSlipping bool
	Rust                 domain.RustLevel
}

// History is the vehicle provenance record.
type History struct {
	Title                 domain.TitleType
	Accident              domain.AccidentSeverity
	OdometerTampering     bool
	ActiveRecalls         bool
	FrameDamage           bool
	FrameDamageRepaired   bool
	Stolen                bool
	PreviousRental        bool
	PreviousTaxi          bool
	MissingServiceRecords bool
	Specialty             bool
	RustFreeHistory       bool
	OwnerCount            int
}

// Policy holds dealer-configurable acquisition economics.
type Policy struct {
	ProfitMarginPercent  float64 `json:"profit_margin_percent"  yaml:"profit_margin_percent"`
	HoldingCostPerDay    float64 `json:"holding_cost_per_day"   yaml:"holding_cost_per_day"`
	EstimatedHoldingDays int     `json:"estimated_holding_days" yaml:"estimated_holding_days"`
	SafetyBufferPercent  float64 `json:"safety_buffer_percent"  yaml:"safety_buffer_percent"`
}

// DefaultPolicy returns the reference business policy.
func DefaultPolicy() Policy {
	return Policy{
		ProfitMarginPercent:  15,
		HoldingCostPerDay:    50,
		EstimatedHoldingDays: 10,
		SafetyBufferPercent:  12,
	}
}

// Comparable is one inventory listing used as a pricing reference.
type Comparable struct {
	ID           string              `json:"id"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
	Trim         string              `json:"trim"`
	Year         int                 `json:"year"`
	Price        float64             `json:"price"`
	Kilometers   int                 `json:"kilometers"`
	Transmission domain.Transmission `json:"transmission"`
	BodyType     domain.BodyType     `json:"body_type"`
	DealershipID string              `json:"dealership_id"`
}

// Input bundles everything one appraisal needs.
type Input struct {
	Vehicle     Vehicle
	Condition   Condition
	History     History
	Policy      Policy
	Comparables []Comparable

	// DealerNames resolves comparable dealership IDs for display.
	DealerNames map[string]string

	// Optional caller overrides.
	Reconditioning *float64
	ProfitMargin   *float64
}

// Result is the complete appraisal outcome.
type Result struct {
	Decision        domain.Decision        `json:"decision"`
	DecisionReasons []string               `json:"decision_reasons"`
	ValuationMethod domain.ValuationMethod `json:"valuation_method"`
	BaseValue       float64                `json:"base_value"`

	RetailValue    float64 `json:"retail_value"`
	WholesaleValue float64 `json:"wholesale_value"`
	TradeInOffer   float64 `json:"trade_in_offer"`
	TradeInLow     float64 `json:"trade_in_low"`
	TradeInHigh    float64 `json:"trade_in_high"`

	Adjustments    []Adjustment `json:"adjustments"`
	Reconditioning float64      `json:"reconditioning"`
	ProfitMargin   float64      `json:"profit_margin"`
	HoldingCosts   float64      `json:"holding_costs"`
	SafetyBuffer   float64      `json:"safety_buffer"`

	MileageAdjustment  float64 `json:"mileage_adjustment"`
	RegionalMultiplier float64 `json:"regional_multiplier"`
	SeasonalFactor     float64 `json:"seasonal_factor"`
	TitleDeduction     float64 `json:"title_deduction"`
	ConditionDeduction float64 `json:"condition_deduction"`
	AccidentDeduction  float64 `json:"accident_deduction"`
	HistoryDeductions  float64 `json:"history_deductions"`

	TopComparables     []ScoredComparable `json:"top_comparables"`
	MarketIntelligence MarketIntelligence `json:"market_intelligence"`
	Confidence         float64            `json:"confidence"`
}

// DaysOnMarketFunc supplies the average days-on-market statistic.
type DaysOnMarketFunc func() float64

// PlaceholderDaysOnMarket is the default days-on-market source. It has no
// real listing-duration feed behind it and returns uniform jitter in [21,35).
func PlaceholderDaysOnMarket() float64 {
	return 21 + rand.Float64()*14 //nolint:gosec // placeholder statistic, not security sensitive
}

// Appraiser runs appraisals with a fixed set of rates and injected sources.
type Appraiser struct {
	rates           Rates
	now             func() time.Time
	daysOnMarket    DaysOnMarketFunc
	comparableLimit int
	topComparables  int
}

// Option configures the Appraiser.
type Option func(*Appraiser)

// WithRates overrides the comparable price adjustment rates.
func WithRates(r Rates) Option {
	return func(a *Appraiser) {
		a.rates = r
	}
}

// WithClock overrides the time source used for vehicle age and seasonality.
func WithClock(now func() time.Time) Option {
	return func(a *Appraiser) {
		a.now = now
	}
}

// WithDaysOnMarket overrides the days-on-market source.
func WithDaysOnMarket(f DaysOnMarketFunc) Option {
	return func(a *Appraiser) {
		a.daysOnMarket = f
	}
}

// WithComparableLimit sets how many ranked comparables feed valuation.
func WithComparableLimit(n int) Option {
	return func(a *Appraiser) {
		if n > 0 {
			a.comparableLimit = n
		}
	}
}

// WithTopComparables sets how many comparables are returned for display.
func WithTopComparables(n int) Option {
	return func(a *Appraiser) {
		if n > 0 {
			a.topComparables = n
		}
	}
}

// New creates an Appraiser with default rates and the wall clock.
func New(opts ...Option) *Appraiser {
	a := &Appraiser{
		rates:           DefaultRates(),
		now:             time.Now,
		daysOnMarket:    PlaceholderDaysOnMarket,
		comparableLimit: DefaultComparableLimit,
		topComparables:  DefaultTopComparables,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Appraise values a vehicle. It never fails: sparse input falls back to
// neutral defaults. A rejection decision does not skip valuation.
func (a *Appraiser) Appraise(in *Input) *Result {
	now := a.now()
	age := now.Year() - in.Vehicle.Year

	ranked := Match(&in.Vehicle, in.Comparables, in.DealerNames, a.rates)
	pool := ranked[:min(len(ranked), a.comparableLimit)]

	base, method := Estimate(pool, &in.Vehicle, age)
	adj := Adjust(base, &in.Vehicle, &in.Condition, &in.History, age, now.Month())
	retail := max(adj.RetailValue, 0)

	mi := Summarize(pool, retail, a.daysOnMarket)
	decision, reasons := Decide(&in.Vehicle, &in.Condition, &in.History, age)

	offer := ComputeOffer(&OfferInput{
		RetailValue:    retail,
		Condition:      &in.Condition,
		Policy:         in.Policy,
		Reconditioning: in.Reconditioning,
		ProfitMargin:   in.ProfitMargin,
	})

	top := make([]ScoredComparable, min(len(ranked), a.topComparables))
	copy(top, ranked)

	return &Result{
		Decision:        decision,
		DecisionReasons: reasons,
		ValuationMethod: method,
		BaseValue:       max(base, 0),

		RetailValue:    retail,
		WholesaleValue: offer.WholesaleValue,
		TradeInOffer:   offer.TradeInOffer,
		TradeInLow:     offer.TradeInLow,
		TradeInHigh:    offer.TradeInHigh,

		Adjustments:    adj.Items,
		Reconditioning: offer.Reconditioning,
		ProfitMargin:   offer.ProfitMargin,
		HoldingCosts:   offer.HoldingCosts,
		SafetyBuffer:   offer.SafetyBuffer,

		MileageAdjustment:  adj.Mileage,
		RegionalMultiplier: adj.RegionalMultiplier,
		SeasonalFactor:     adj.SeasonalFactor,
		TitleDeduction:     adj.Title,
		ConditionDeduction: adj.Condition,
		AccidentDeduction:  adj.Accident,
		HistoryDeductions:  adj.History,

		TopComparables:     top,
		MarketIntelligence: mi,
		Confidence:         Confidence(mi.TotalComparables, mi.ExactMatches),
	}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func provinceCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
