package appraise

import (
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// AdjustmentType is the display direction of an adjustment.
type AdjustmentType string

// Adjustment type constants.
const (
	AdjustAdd      AdjustmentType = "add"
	AdjustSubtract AdjustmentType = "subtract"
	AdjustMultiply AdjustmentType = "multiply"
)

// AdjustmentKind identifies the pipeline step that produced an adjustment.
type AdjustmentKind string

// Adjustment kinds, in pipeline order.
const (
	KindMileage        AdjustmentKind = "mileage"
	KindRegional       AdjustmentKind = "regional"
	KindRustFree       AdjustmentKind = "rust_free"
	KindSeasonal       AdjustmentKind = "seasonal"
	KindTitle          AdjustmentKind = "title"
	KindAccident       AdjustmentKind = "accident"
	KindCondition      AdjustmentKind = "condition"
	KindOwners         AdjustmentKind = "owners"
	KindRental         AdjustmentKind = "rental"
	KindTaxi           AdjustmentKind = "taxi"
	KindServiceRecords AdjustmentKind = "service_records"
)

// Adjustment is one itemized change to the base value. Amount is signed.
type Adjustment struct {
	Label  string         `json:"label"`
	Amount float64        `json:"amount"`
	Type   AdjustmentType `json:"type"`
	Kind   AdjustmentKind `json:"kind"`
}

const (
	expectedKmPerYear  = 20000
	mileageRatePerKm   = 0.02
	maxMileageFraction = 0.20
	rustFreeBonus      = 0.075
	conditionStep      = 0.03
	ownerStep          = 0.025
	includedOwners     = 2
	rentalDeduction    = 0.075
	taxiDeduction      = 0.20
	serviceDeduction   = 0.075
)

// Adjustments is the output of the adjustment pipeline.
type Adjustments struct {
	Items []Adjustment

	// RetailValue is base + Mileage + the sum of every non-mileage item. It
	// is not clamped.
	RetailValue float64

	Mileage            float64
	RegionalMultiplier float64
	SeasonalFactor     float64
	Title              float64
	Accident           float64
	Condition          float64
	History            float64
}

// sprintf formats display labels with English digit grouping.
func sprintf(format string, a ...any) string {
	return message.NewPrinter(language.English).Sprintf(format, a...)
}

// Adjust runs the ordered adjustment pipeline over a base value.
func Adjust(
	base float64,
	v *Vehicle,
	c *Condition,
	h *History,
	age int,
	month time.Month,
) Adjustments {
	out := Adjustments{RegionalMultiplier: 1, SeasonalFactor: 1}
	province := provinceCode(v.Province)

	out.Mileage = mileageAdjustment(base, v.Kilometers, age)
	if out.Mileage != 0 {
		out.Items = append(out.Items, signed(
			sprintf("Mileage adjustment (%d km)", v.Kilometers),
			out.Mileage, KindMileage,
		))
	}

	out.RegionalMultiplier = RegionalMultiplier(province)
	if out.RegionalMultiplier != 1 {
		out.Items = append(out.Items, factor(
			"Regional market ("+regionName(province)+")",
			base, out.RegionalMultiplier, KindRegional,
		))
	}

	if h.RustFreeHistory && saltBeltProvinces[province] {
		out.Items = append(out.Items, signed(
			"Rust-free history (BC/Alberta)", base*rustFreeBonus, KindRustFree,
		))
	}

	out.SeasonalFactor = seasonalFactor(v.BodyType, month)
	if out.SeasonalFactor != 1 {
		out.Items = append(out.Items, factor(
			"Seasonal adjustment", base, out.SeasonalFactor, KindSeasonal,
		))
	}

	if h.Title == domain.TitleRebuilt {
		out.Title = base * TitleDeduction(h.Title)
		out.Items = append(out.Items, signed("Title status (Rebuilt)", -out.Title, KindTitle))
	}

	if d := accidentDeductions[h.Accident]; d > 0 {
		out.Accident = base * d
		out.Items = append(out.Items, signed(
			"Accident history ("+cases.Title(language.English).String(string(h.Accident))+")", -out.Accident, KindAccident,
		))
	}

	g := clampGrade(c.Grade)
	out.Condition = base * float64(5-g) * conditionStep
	if out.Condition != 0 {
		out.Items = append(out.Items, signed(
			sprintf("Condition (Grade %d - %s)", g, naaaGrades[g].label),
			-out.Condition, KindCondition,
		))
	}

	for _, hd := range historyDeductions(h) {
		amount := base * hd.fraction
		out.History += amount
		out.Items = append(out.Items, signed(hd.label, -amount, hd.kind))
	}

	out.RetailValue = base + out.Mileage
	for _, a := range out.Items {
		if a.Kind == KindMileage {
			continue
		}
		out.RetailValue += a.Amount
	}
	return out
}

// mileageAdjustment rewards below-expected odometer readings and penalizes
// above-expected ones, bounded to a fifth of the base value.
func mileageAdjustment(base float64, km, age int) float64 {
	expected := max(age, 0) * expectedKmPerYear
	raw := -float64(km-expected) * mileageRatePerKm
	limit := math.Abs(base) * maxMileageFraction
	return clamp(raw, -limit, limit)
}

func seasonalFactor(body domain.BodyType, month time.Month) float64 {
	f, ok := seasonalFactors[int(month)]
	if !ok {
		f = 1
	}
	summer := month >= time.May && month <= time.August
	winter := month >= time.November || month <= time.February
	switch {
	case body == domain.BodyConvertible && summer:
		f *= 1.10
	case body == domain.BodyConvertible && winter:
		f *= 0.88
	case body == domain.BodyTruck && winter:
		f *= 1.03
	}
	return f
}

type historyDeduction struct {
	label    string
	fraction float64
	kind     AdjustmentKind
}

func historyDeductions(h *History) []historyDeduction {
	var out []historyDeduction
	if owners := max(h.OwnerCount, 1); owners > includedOwners {
		out = append(out, historyDeduction{
			label:    sprintf("Multiple owners (%d)", owners),
			fraction: float64(owners-includedOwners) * ownerStep,
			kind:     KindOwners,
		})
	}
	if h.PreviousRental {
		out = append(out, historyDeduction{"Previous rental", rentalDeduction, KindRental})
	}
	if h.PreviousTaxi {
		out = append(out, historyDeduction{"Previous taxi/rideshare", taxiDeduction, KindTaxi})
	}
	if h.MissingServiceRecords {
		out = append(out, historyDeduction{"Missing service records", serviceDeduction, KindServiceRecords})
	}
	return out
}

func signed(label string, amount float64, kind AdjustmentKind) Adjustment {
	t := AdjustAdd
	if amount < 0 {
		t = AdjustSubtract
	}
	return Adjustment{Label: label, Amount: amount, Type: t, Kind: kind}
}

// factor converts a multiplier into a signed amount of base.
func factor(label string, base, multiplier float64, kind AdjustmentKind) Adjustment {
	amount := base * math.Abs(multiplier-1)
	if multiplier < 1 {
		amount = -amount
	}
	return signed(label, amount, kind)
}

func regionName(code string) string {
	if name, ok := provinceNames[code]; ok {
		return name
	}
	return code
}

func clampGrade(g int) int {
	return max(0, min(5, g))
}
