package appraise

import (
	"math"
	"slices"
	"strings"
)

const (
	// maxYearSpread is the widest model-year gap a comparable may have.
	maxYearSpread = 3

	// UnknownDealer is shown for comparables whose dealership cannot be resolved.
	UnknownDealer = "Unknown"
)

// Rates are the heuristic comparable price adjustment rates.
type Rates struct {
	// PerKm is the dollar adjustment per kilometer of odometer difference.
	PerKm float64 `json:"per_km"   yaml:"per_km"`
	// PerYear is the compounding adjustment per model year of difference.
	PerYear float64 `json:"per_year" yaml:"per_year"`
}

// DefaultRates returns the reference adjustment rates.
func DefaultRates() Rates {
	return Rates{PerKm: 0.015, PerYear: 0.08}
}

// ScoredComparable decorates a Comparable with its similarity to the
// appraised vehicle.
type ScoredComparable struct {
	Comparable

	MatchScore     int     `json:"match_score"`
	PriceAdjusted  float64 `json:"price_adjusted"`
	YearDiff       int     `json:"year_diff"`
	KmDiff         int     `json:"km_diff"`
	TrimMatch      bool    `json:"trim_match"`
	DealershipName string  `json:"dealership_name"`
}

// Match filters pool to the vehicle's make and model within three model
// years, scores each survivor and returns them ranked by score, highest
// first. Ties keep pool order.
func Match(
	v *Vehicle,
	pool []Comparable,
	dealers map[string]string,
	rates Rates,
) []ScoredComparable {
	mk, md, trim := lower(v.Make), lower(v.Model), lower(v.Trim)

	out := make([]ScoredComparable, 0, len(pool))
	for i := range pool {
		c := &pool[i]
		if lower(c.Make) != mk || lower(c.Model) != md {
			continue
		}
		yearDiff := v.Year - c.Year
		if abs(yearDiff) > maxYearSpread {
			continue
		}
		kmDiff := v.Kilometers - c.Kilometers
		trimMatch := trim != "" && strings.Contains(lower(c.Trim), trim)

		out = append(out, ScoredComparable{
			Comparable:     *c,
			MatchScore:     score(v, c, yearDiff, kmDiff, trimMatch),
			PriceAdjusted:  adjustPrice(c.Price, yearDiff, kmDiff, rates),
			YearDiff:       yearDiff,
			KmDiff:         kmDiff,
			TrimMatch:      trimMatch,
			DealershipName: dealerName(dealers, c.DealershipID),
		})
	}

	slices.SortStableFunc(out, func(a, b ScoredComparable) int {
		return b.MatchScore - a.MatchScore
	})
	return out
}

func score(v *Vehicle, c *Comparable, yearDiff, kmDiff int, trimMatch bool) int {
	s := 100 - 10*float64(abs(yearDiff)) - math.Min(float64(abs(kmDiff))/10000, 20)
	if trimMatch {
		s += 10
	}
	if c.Transmission != "" && c.Transmission == v.Transmission {
		s += 5
	}
	if c.BodyType != "" && c.BodyType == v.BodyType {
		s += 5
	}
	return int(math.Round(clamp(s, 0, 100)))
}

// adjustPrice normalizes a comparable's price to the appraised vehicle's
// odometer and model year.
func adjustPrice(price float64, yearDiff, kmDiff int, rates Rates) float64 {
	p := price + float64(kmDiff)*rates.PerKm
	p *= math.Pow(1+rates.PerYear, float64(yearDiff))
	return math.Max(p, 0)
}

func dealerName(dealers map[string]string, id string) string {
	if name, ok := dealers[id]; ok && name != "" {
		return name
	}
	return UnknownDealer
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
