package appraise

import (
	"math"

	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

const (
	minComparables     = 3
	highQualityScore   = 70
	inventoryTake      = 10
	hybridTake         = 5
	hybridDepreciation = 0.4
	hybridComparables  = 0.6
	depreciationDecay  = 0.92
	maxDepreciation    = 0.85
	electricCurveKey   = "electric"
)

// Estimate chooses a valuation strategy from the quality of the ranked
// comparables and returns the base value.
func Estimate(comps []ScoredComparable, v *Vehicle, age int) (float64, domain.ValuationMethod) {
	if len(comps) < minComparables {
		return Depreciate(v, age), domain.MethodDepreciation
	}

	hq := make([]ScoredComparable, 0, len(comps))
	for i := range comps {
		if comps[i].MatchScore >= highQualityScore {
			hq = append(hq, comps[i])
		}
	}

	if len(hq) >= minComparables {
		var sum, weights float64
		for _, c := range hq[:min(len(hq), inventoryTake)] {
			w := float64(c.MatchScore) / 100
			sum += c.PriceAdjusted * w
			weights += w
		}
		return sum / weights, domain.MethodInventory
	}

	top := comps[:min(len(comps), hybridTake)]
	prices := make([]float64, len(top))
	for i := range top {
		prices[i] = top[i].PriceAdjusted
	}
	dep := Depreciate(v, age)
	return dep*hybridDepreciation + mean(prices)*hybridComparables, domain.MethodHybrid
}

// Depreciate estimates value from MSRP using the body type's depreciation
// curve and the make's brand multiplier.
func Depreciate(v *Vehicle, age int) float64 {
	msrp := v.MSRP
	if msrp <= 0 {
		msrp = DefaultMSRP
	}
	return msrp * (1 - depreciation(curveFor(v), age)) * BrandMultiplier(v.Make)
}

// depreciation returns the cumulative depreciated fraction after age years.
func depreciation(c curve, age int) float64 {
	if age <= 0 {
		return 0
	}
	d := c.year1
	for i := 1; i < age; i++ {
		d += c.annual * math.Pow(depreciationDecay, float64(i-1))
	}
	return math.Min(d, maxDepreciation)
}

func curveFor(v *Vehicle) curve {
	key := string(v.BodyType)
	if v.FuelType == domain.FuelElectric {
		key = electricCurveKey
	}
	if c, ok := depreciationCurves[key]; ok {
		return c
	}
	return defaultCurve
}
