package appraise

import "math"

const (
	wholesaleFactor = 0.82
	tradeInBandLow  = 0.92
	tradeInBandHigh = 1.08
)

// Mechanical repair estimates in dollars.
const (
	brakesCritical    = 450
	brakesWorn        = 250
	tiresCritical     = 800
	tiresWorn         = 400
	checkEngineRepair = 350
	roughIdleRepair   = 200
	smokeRepair       = 1500
	slippingRepair    = 2500
)

// OfferInput is what the offer calculator needs.
type OfferInput struct {
	RetailValue float64
	Condition   *Condition
	Policy      Policy

	// Optional overrides.
	Reconditioning *float64
	ProfitMargin   *float64
}

// Offer is the priced trade-in offer.
type Offer struct {
	WholesaleValue float64
	Reconditioning float64
	ProfitMargin   float64
	HoldingCosts   float64
	SafetyBuffer   float64
	TradeInOffer   float64
	TradeInLow     float64
	TradeInHigh    float64
}

// ComputeOffer derives wholesale value, costs and the trade-in band from a
// retail value. The acquisition decision does not change the arithmetic.
func ComputeOffer(in *OfferInput) Offer {
	retail := math.Max(in.RetailValue, 0)

	o := Offer{
		WholesaleValue: retail * wholesaleFactor,
		Reconditioning: ReconditioningCost(in.Condition),
		ProfitMargin:   retail * in.Policy.ProfitMarginPercent / 100,
		HoldingCosts:   in.Policy.HoldingCostPerDay * float64(in.Policy.EstimatedHoldingDays),
		SafetyBuffer:   retail * in.Policy.SafetyBufferPercent / 100,
	}
	if in.Reconditioning != nil {
		o.Reconditioning = math.Max(*in.Reconditioning, 0)
	}
	if in.ProfitMargin != nil {
		o.ProfitMargin = math.Max(*in.ProfitMargin, 0)
	}

	o.TradeInOffer = math.Max(
		o.WholesaleValue-o.Reconditioning-o.ProfitMargin-o.HoldingCosts-o.SafetyBuffer,
		0,
	)
	o.TradeInLow = o.TradeInOffer * tradeInBandLow
	o.TradeInHigh = o.TradeInOffer * tradeInBandHigh
	return o
}

// ReconditioningCost estimates reconditioning as the midpoint of the grade's
// cost band plus mechanical repairs.
func ReconditioningCost(c *Condition) float64 {
	band := naaaGrades[clampGrade(c.Grade)]
	cost := (band.reconLow + band.reconHigh) / 2

	switch {
	case c.BrakePadMM < 2:
		cost += brakesCritical
	case c.BrakePadMM < 3:
		cost += brakesWorn
	}
	switch {
	case c.TireTreadMM < 4:
		cost += tiresCritical
	case c.TireTreadMM < 5:
		cost += tiresWorn
	}
	if c.CheckEngineLight {
		cost += checkEngineRepair
	}
	if c.RoughIdle {
		cost += roughIdleRepair
	}
	if c.ExcessiveSmoke {
		cost += smokeRepair
	}
	if c.TransmissionSlipping {
		cost += slippingRepair
	}
	cost += rustRepairCosts[c.Rust]
	return cost
}

// Confidence scores how well the comparable pool supports the valuation.
func Confidence(comparables, exactMatches int) float64 {
	return math.Min(98,
		60+math.Min(25, float64(comparables)*2.5)+math.Min(15, float64(exactMatches)*5))
}
