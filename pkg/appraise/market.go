package appraise

import (
	"cmp"
	"math"
	"slices"
)

// Price position classifications.
const (
	PositionBelow       = "below"
	PositionCompetitive = "competitive"
	PositionAbove       = "above"
)

// Market strength classifications.
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

const (
	exactMatchScore  = 90
	topDealerCount   = 5
	priceBandLow     = 0.92
	priceBandHigh    = 1.08
	competitiveBelow = 0.95
	competitiveAbove = 1.05
)

// Stats are central tendency and spread figures for one series.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev,omitempty"`
}

// DealerBreakdown counts comparables listed by one dealership.
type DealerBreakdown struct {
	DealershipID string  `json:"dealership_id"`
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	AvgPrice     float64 `json:"avg_price"`
}

// YearBreakdown counts comparables of one model year.
type YearBreakdown struct {
	Year     int     `json:"year"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
}

// TrimBreakdown counts comparables of one trim.
type TrimBreakdown struct {
	Trim     string  `json:"trim"`
	Count    int     `json:"count"`
	AvgPrice float64 `json:"avg_price"`
}

// MarketIntelligence summarizes the comparable pool.
type MarketIntelligence struct {
	TotalComparables int     `json:"total_comparables"`
	ExactMatches     int     `json:"exact_matches"`
	Price            Stats   `json:"price"`
	Kilometers       Stats   `json:"kilometers"`
	AvgAdjustedPrice float64 `json:"avg_adjusted_price"`
	PricePerKm       float64 `json:"price_per_km"`
	AvgDaysOnMarket  float64 `json:"avg_days_on_market"`

	Dealers []DealerBreakdown `json:"dealers"`
	Years   []YearBreakdown   `json:"years"`
	Trims   []TrimBreakdown   `json:"trims"`

	PricePosition      string  `json:"price_position"`
	PercentilePosition float64 `json:"percentile_position"`
	RecommendedLow     float64 `json:"recommended_low"`
	RecommendedHigh    float64 `json:"recommended_high"`
	MarketStrength     string  `json:"market_strength"`
	DataQuality        int     `json:"data_quality"`
}

// Summarize aggregates ranked comparables relative to a candidate retail
// price. An empty list yields a neutral summary.
func Summarize(comps []ScoredComparable, price float64, daysOnMarket DaysOnMarketFunc) MarketIntelligence {
	if len(comps) == 0 {
		return MarketIntelligence{
			PricePosition:      PositionCompetitive,
			PercentilePosition: 50,
			MarketStrength:     StrengthWeak,
			Dealers:            []DealerBreakdown{},
			Years:              []YearBreakdown{},
			Trims:              []TrimBreakdown{},
		}
	}

	prices := make([]float64, len(comps))
	kms := make([]float64, len(comps))
	adjusted := make([]float64, len(comps))
	exact := 0
	var perKmSum float64
	perKmN := 0
	for i := range comps {
		c := &comps[i]
		prices[i] = c.Price
		kms[i] = float64(c.Kilometers)
		adjusted[i] = c.PriceAdjusted
		if c.MatchScore >= exactMatchScore {
			exact++
		}
		if c.Kilometers > 0 {
			perKmSum += c.Price / float64(c.Kilometers)
			perKmN++
		}
	}

	mi := MarketIntelligence{
		TotalComparables: len(comps),
		ExactMatches:     exact,
		Price:            describe(prices),
		Kilometers:       describe(kms),
		AvgAdjustedPrice: mean(adjusted),
		Dealers:          dealerBreakdown(comps),
		Years:            yearBreakdown(comps),
		Trims:            trimBreakdown(comps),
	}
	mi.Price.StdDev = stddev(prices, mi.Price.Mean)
	if perKmN > 0 {
		mi.PricePerKm = perKmSum / float64(perKmN)
	}
	if daysOnMarket != nil {
		mi.AvgDaysOnMarket = daysOnMarket()
	}

	switch {
	case price < competitiveBelow*mi.AvgAdjustedPrice:
		mi.PricePosition = PositionBelow
	case price > competitiveAbove*mi.AvgAdjustedPrice:
		mi.PricePosition = PositionAbove
	default:
		mi.PricePosition = PositionCompetitive
	}
	mi.PercentilePosition = percentile(price, mi.Price.Min, mi.Price.Max)
	mi.RecommendedLow = mi.AvgAdjustedPrice * priceBandLow
	mi.RecommendedHigh = mi.AvgAdjustedPrice * priceBandHigh

	switch {
	case mi.TotalComparables >= 10 && exact >= 3:
		mi.MarketStrength = StrengthStrong
	case mi.TotalComparables >= 5:
		mi.MarketStrength = StrengthModerate
	default:
		mi.MarketStrength = StrengthWeak
	}
	mi.DataQuality = min(100, mi.TotalComparables*5+exact*10)

	return mi
}

func percentile(price, lo, hi float64) float64 {
	if hi <= lo {
		return 50
	}
	return clamp((price-lo)/(hi-lo)*100, 0, 100)
}

func describe(xs []float64) Stats {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	n := len(sorted)
	med := sorted[n/2]
	if n%2 == 0 {
		med = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return Stats{
		Mean:   mean(xs),
		Median: med,
		Min:    sorted[0],
		Max:    sorted[n-1],
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, m float64) float64 {
	var ss float64
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return math.Sqrt(ss / float64(len(xs)))
}

type bucket struct {
	count int
	sum   float64
}

func (b bucket) avg() float64 {
	return b.sum / float64(b.count)
}

func dealerBreakdown(comps []ScoredComparable) []DealerBreakdown {
	buckets := map[string]*bucket{}
	names := map[string]string{}
	for i := range comps {
		c := &comps[i]
		b, ok := buckets[c.DealershipID]
		if !ok {
			b = &bucket{}
			buckets[c.DealershipID] = b
			names[c.DealershipID] = c.DealershipName
		}
		b.count++
		b.sum += c.Price
	}

	out := make([]DealerBreakdown, 0, len(buckets))
	for id, b := range buckets {
		out = append(out, DealerBreakdown{
			DealershipID: id,
			Name:         names[id],
			Count:        b.count,
			AvgPrice:     b.avg(),
		})
	}
	slices.SortFunc(out, func(a, b DealerBreakdown) int {
		return cmp.Or(
			b.Count-a.Count,
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.DealershipID, b.DealershipID),
		)
	})
	return out[:min(len(out), topDealerCount)]
}

func yearBreakdown(comps []ScoredComparable) []YearBreakdown {
	buckets := map[int]*bucket{}
	for i := range comps {
		b, ok := buckets[comps[i].Year]
		if !ok {
			b = &bucket{}
			buckets[comps[i].Year] = b
		}
		b.count++
		b.sum += comps[i].Price
	}

	out := make([]YearBreakdown, 0, len(buckets))
	for y, b := range buckets {
		out = append(out, YearBreakdown{Year: y, Count: b.count, AvgPrice: b.avg()})
	}
	slices.SortFunc(out, func(a, b YearBreakdown) int {
		return b.Year - a.Year
	})
	return out
}

func trimBreakdown(comps []ScoredComparable) []TrimBreakdown {
	buckets := map[string]*bucket{}
	for i := range comps {
		b, ok := buckets[comps[i].Trim]
		if !ok {
			b = &bucket{}
			buckets[comps[i].Trim] = b
		}
		b.count++
		b.sum += comps[i].Price
	}

	out := make([]TrimBreakdown, 0, len(buckets))
	for t, b := range buckets {
		out = append(out, TrimBreakdown{Trim: t, Count: b.count, AvgPrice: b.avg()})
	}
	slices.SortFunc(out, func(a, b TrimBreakdown) int {
		return cmp.Or(b.Count-a.Count, cmp.Compare(a.Trim, b.Trim))
	})
	return out
}
