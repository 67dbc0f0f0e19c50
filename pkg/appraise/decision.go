package appraise

import (
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

const (
	maxKilometers = 300000
	maxAgeYears   = 15
)

// Decision reasons.
const (
	ReasonSalvageTitle      = "Salvage title - automatic rejection"
	ReasonFloodTitle        = "Flood title - automatic rejection"
	ReasonOdometerTampering = "Odometer tampering detected"
	ReasonStolen            = "Stolen vehicle flag"
	ReasonFrameDamage       = "Unrepaired structural/frame damage"
	ReasonMileage           = "Mileage exceeds 300,000 km"
	ReasonAge               = "Vehicle age exceeds 15 years (non-specialty)"
	ReasonInoperative       = "Vehicle is inoperative (Grade 0)"
	ReasonExcessiveSmoke    = "Excessive smoke - engine concern"
	ReasonTransmissionSlip  = "Transmission slipping - drivetrain concern"
	ReasonRebuiltTitle      = "Rebuilt title - wholesale recommended"
	ReasonMajorAccident     = "Major accident history"
	ReasonFrameRepaired     = "Repaired frame damage"
	ReasonPoorCondition     = "Condition grade 2 or below"
	ReasonTaxi              = "Previous taxi/rideshare use"
	ReasonRetailReady       = "Vehicle meets retail criteria"
)

// rejectRule is one early-exit rejection check. Order matters.
type rejectRule struct {
	reason string
	fires  func(v *Vehicle, c *Condition, h *History, age int) bool
}

var rejectRules = []rejectRule{
	{ReasonSalvageTitle, func(_ *Vehicle, _ *Condition, h *History, _ int) bool {
		return h.Title == domain.TitleSalvage
	}},
	{ReasonFloodTitle, func(_ *Vehicle, _ *Condition, h *History, _ int) bool {
		return h.Title == domain.TitleFlood
	}},
	{ReasonOdometerTampering, func(_ *Vehicle, _ *Condition, h *History, _ int) bool {
		return h.OdometerTampering
	}},
	{ReasonStolen, func(_ *Vehicle, _ *Condition, h *History, _ int) bool {
		return h.Stolen
	}},
	{ReasonFrameDamage, func(_ *Vehicle, _ *Condition, h *History, _ int) bool {
		return h.FrameDamage && !h.FrameDamageRepaired
	}},
	{ReasonMileage, func(v *Vehicle, _ *Condition, _ *History, _ int) bool {
		return v.Kilometers > maxKilometers
	}},
	{ReasonAge, func(_ *Vehicle, _ *Condition, h *History, age int) bool {
		return age > maxAgeYears && !h.Specialty
	}},
	{ReasonInoperative, func(_ *Vehicle, c *Condition, _ *History, _ int) bool {
		return clampGrade(c.Grade) == 0
	}},
}

// Decide classifies the acquisition outcome. The first rejection rule to
// fire wins; mechanical red flags then force wholesale; otherwise the
// vehicle is a buy unless any soft downgrade applies. Reasons are never
// empty.
func Decide(v *Vehicle, c *Condition, h *History, age int) (domain.Decision, []string) {
	for _, r := range rejectRules {
		if r.fires(v, c, h, age) {
			return domain.DecisionReject, []string{r.reason}
		}
	}

	var reasons []string
	if c.ExcessiveSmoke {
		reasons = append(reasons, ReasonExcessiveSmoke)
	}
	if c.TransmissionSlipping {
		reasons = append(reasons, ReasonTransmissionSlip)
	}
	if len(reasons) > 0 {
		return domain.DecisionWholesale, reasons
	}

	if h.Title == domain.TitleRebuilt {
		reasons = append(reasons, ReasonRebuiltTitle)
	}
	if h.Accident == domain.AccidentMajor || h.Accident == domain.AccidentSevere {
		reasons = append(reasons, ReasonMajorAccident)
	}
	if h.FrameDamage && h.FrameDamageRepaired {
		reasons = append(reasons, ReasonFrameRepaired)
	}
	if clampGrade(c.Grade) <= 2 {
		reasons = append(reasons, ReasonPoorCondition)
	}
	if h.PreviousTaxi {
		reasons = append(reasons, ReasonTaxi)
	}
	if len(reasons) > 0 {
		return domain.DecisionWholesale, reasons
	}

	return domain.DecisionBuy, []string{ReasonRetailReady}
}
