package appraise

import (
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// Policy tables. All are read-only after package initialization.

// regionalMultipliers reflect provincial retail demand relative to the
// national market.
var regionalMultipliers = map[string]float64{
	"BC": 1.12,
	"AB": 1.09,
	"SK": 1.05,
	"MB": 1.05,
	"ON": 0.99,
	"QC": 0.92,
	"NB": 0.91,
	"NS": 0.91,
	"NL": 0.91,
	"PE": 0.91,
	"NT": 1.00,
	"NU": 1.00,
	"YT": 1.00,
}

var provinceNames = map[string]string{
	"BC": "British Columbia",
	"AB": "Alberta",
	"SK": "Saskatchewan",
	"MB": "Manitoba",
	"ON": "Ontario",
	"QC": "Quebec",
	"NB": "New Brunswick",
	"NS": "Nova Scotia",
	"NL": "Newfoundland",
	"PE": "Prince Edward Island",
	"NT": "Northwest Territories",
	"NU": "Nunavut",
	"YT": "Yukon",
}

// saltBeltProvinces are the markets where a rust-free western history
// commands a premium.
var saltBeltProvinces = map[string]bool{
	"ON": true,
	"QC": true,
	"NB": true,
	"NS": true,
	"NL": true,
	"PE": true,
}

// seasonalFactors is indexed by calendar month (1-12).
var seasonalFactors = map[int]float64{
	1: 0.965, 2: 0.965,
	3: 1.025, 4: 1.025,
	5: 1.005, 6: 1.005,
	7: 0.99, 8: 0.99,
	9: 0.975, 10: 0.975,
	11: 0.97, 12: 0.97,
}

// brandMultipliers capture resale strength by make. Keys are lowercase.
var brandMultipliers = map[string]float64{
	"toyota":     1.08,
	"lexus":      1.10,
	"honda":      1.07,
	"acura":      1.05,
	"ram":        1.02,
	"jeep":       0.98,
	"dodge":      0.93,
	"chrysler":   0.92,
	"mitsubishi": 0.90,
	"fiat":       0.88,
}

// curve is a depreciation profile: the first-year drop and the
// subsequent annual rate before decay.
type curve struct {
	year1  float64
	annual float64
}

var depreciationCurves = map[string]curve{
	"truck":       {year1: 0.175, annual: 0.11},
	"suv":         {year1: 0.20, annual: 0.135},
	"sedan":       {year1: 0.25, annual: 0.175},
	"compact":     {year1: 0.275, annual: 0.165},
	"hatchback":   {year1: 0.275, annual: 0.165},
	"luxury":      {year1: 0.30, annual: 0.20},
	"electric":    {year1: 0.35, annual: 0.175},
	"coupe":       {year1: 0.22, annual: 0.15},
	"van":         {year1: 0.25, annual: 0.16},
	"convertible": {year1: 0.28, annual: 0.18},
}

var defaultCurve = curve{year1: 0.25, annual: 0.15}

// grade describes one step of the NAAA condition scale.
type grade struct {
	label     string
	reconLow  float64
	reconHigh float64
}

var naaaGrades = map[int]grade{
	5: {label: "Excellent", reconLow: 500, reconHigh: 1000},
	4: {label: "Good", reconLow: 1000, reconHigh: 1500},
	3: {label: "Fair", reconLow: 1500, reconHigh: 2500},
	2: {label: "Poor", reconLow: 2500, reconHigh: 4000},
	1: {label: "Very Poor", reconLow: 4000, reconHigh: 6000},
	0: {label: "Inoperative", reconLow: 0, reconHigh: 0},
}

// titleDeductions is the fraction of base value lost to a title brand.
// Salvage and flood are total losses; those vehicles are rejected before
// their deduction would matter.
var titleDeductions = map[domain.TitleType]float64{
	domain.TitleClean:   0,
	domain.TitleRebuilt: 0.30,
	domain.TitleSalvage: 1.0,
	domain.TitleFlood:   1.0,
}

var accidentDeductions = map[domain.AccidentSeverity]float64{
	domain.AccidentNone:     0,
	domain.AccidentCosmetic: 0.075,
	domain.AccidentMinor:    0.10,
	domain.AccidentModerate: 0.125,
	domain.AccidentMajor:    0.20,
	domain.AccidentSevere:   0.35,
}

var rustRepairCosts = map[domain.RustLevel]float64{
	domain.RustNone:     0,
	domain.RustMinor:    300,
	domain.RustModerate: 800,
	domain.RustSevere:   2000,
}

// TitleDeduction returns the fraction of base value deducted for a title type.
func TitleDeduction(t domain.TitleType) float64 {
	return titleDeductions[t]
}

// RegionalMultiplier returns the market multiplier for a province code,
// or 1.0 when the province is unknown.
func RegionalMultiplier(province string) float64 {
	if m, ok := regionalMultipliers[province]; ok {
		return m
	}
	return 1.0
}

// BrandMultiplier returns the resale multiplier for a make (case-insensitive),
// or 1.0 when the make has no entry.
func BrandMultiplier(brand string) float64 {
	if m, ok := brandMultipliers[lower(brand)]; ok {
		return m
	}
	return 1.0
}
