// Package normalize maps free-form vehicle attribute strings, as returned by
// VIN decoders and listing scrapers, onto the closed vocabularies used by the
// appraisal engine. Every function is total: absent or unrecognized input
// yields a fixed default.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// rule maps any of its substrings to a value. Rules are evaluated in order
// and the first match wins.
type rule[T any] struct {
	needles []string
	value   T
}

var bodyRules = []rule[domain.BodyType]{
	{[]string{"pickup", "truck"}, domain.BodyTruck},
	{[]string{"suv", "sport utility", "crossover"}, domain.BodySUV},
	{[]string{"sedan", "saloon"}, domain.BodySedan},
	{[]string{"coupe"}, domain.BodyCoupe},
	{[]string{"hatchback", "hatch"}, domain.BodyHatchback},
	{[]string{"van", "minivan", "mpv"}, domain.BodyVan},
	{[]string{"convertible", "roadster", "cabriolet"}, domain.BodyConvertible},
	{[]string{"wagon", "estate"}, domain.BodyWagon},
}

var transmissionRules = []rule[domain.Transmission]{
	{[]string{"cvt", "continuously variable"}, domain.TransmissionCVT},
	{[]string{"manual"}, domain.TransmissionManual},
}

var drivetrainRules = []rule[domain.Drivetrain]{
	{[]string{"4wd", "4x4", "4-wheel"}, domain.Drive4WD},
	{[]string{"awd", "all-wheel"}, domain.DriveAWD},
	{[]string{"rwd", "rear-wheel"}, domain.DriveRWD},
}

var fuelRules = []rule[domain.FuelType]{
	{[]string{"diesel"}, domain.FuelDiesel},
	{[]string{"hybrid", "plug-in"}, domain.FuelHybrid},
	{[]string{"flex", "e85"}, domain.FuelFlex},
}

// BodyType normalizes a body class such as "Sport Utility Vehicle (SUV)/
// Multi-Purpose Vehicle (MPV)". Defaults to sedan.
func BodyType(raw string) domain.BodyType {
	return match(raw, bodyRules, domain.BodySedan)
}

// Transmission normalizes a transmission description. Defaults to automatic.
func Transmission(raw string) domain.Transmission {
	return match(raw, transmissionRules, domain.TransmissionAutomatic)
}

// Drivetrain normalizes a drive type description. Defaults to fwd.
func Drivetrain(raw string) domain.Drivetrain {
	return match(raw, drivetrainRules, domain.DriveFWD)
}

// FuelType normalizes a fuel description. "Electric" only maps to electric
// when it is not also a hybrid. Defaults to gasoline.
func FuelType(raw string) domain.FuelType {
	s := Fold(raw)
	if strings.Contains(s, "diesel") {
		return domain.FuelDiesel
	}
	if strings.Contains(s, "electric") && !strings.Contains(s, "hybrid") {
		return domain.FuelElectric
	}
	return match(s, fuelRules, domain.FuelGasoline)
}

// simpleGrades maps the quick-appraisal condition picker to NAAA grades.
var simpleGrades = map[string]int{
	"excellent": 5,
	"good":      4,
	"fair":      3,
	"poor":      2,
}

// SimpleConditionGrade maps a simple condition label (excellent, good, fair,
// poor) to its NAAA grade. Unknown labels map to 4.
func SimpleConditionGrade(label string) int {
	if g, ok := simpleGrades[Fold(label)]; ok {
		return g
	}
	return 4
}

// Fold lowercases s, strips diacritics and collapses runs of whitespace.
func Fold(s string) string {
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}

func match[T any](raw string, rules []rule[T], fallback T) T {
	s := Fold(raw)
	if s == "" {
		return fallback
	}
	for _, r := range rules {
		for _, n := range r.needles {
			if strings.Contains(s, n) {
				return r.value
			}
		}
	}
	return fallback
}
