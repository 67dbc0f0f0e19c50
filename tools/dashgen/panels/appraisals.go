package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DecisionRate returns a timeseries panel showing appraisals per minute
// split by decision.
func DecisionRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Appraisals / min").
		Description("Completed appraisals per minute by decision").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum by (decision) (dap:appraisals:rate5m) * 60`, "{{decision}}", "A")).
		FillOpacity(20).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ValuationMethods returns a timeseries panel showing which valuation
// strategy produced the base value.
func ValuationMethods() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Valuation Method").
		Description("Share of appraisals valued from inventory, hybrid or depreciation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`sum by (method) (dap:appraisals:rate5m) / ignoring(method) group_left sum(dap:appraisals:rate5m) * 100`,
			"{{method}}", "A",
		)).
		Unit("percent").
		FillOpacity(20).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AppraisalErrors returns a timeseries panel showing failed appraisals by
// reason.
func AppraisalErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Appraisal Errors / min").
		Description("Rejected or failed appraisals per minute by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum by (reason) (rate(`+jobSel("dap_appraisal_errors_total")+`[5m])) * 60`, "{{reason}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AppraisalLatency returns a timeseries panel showing p50 and p95 time spent
// valuing a vehicle.
func AppraisalLatency() *timeseries.PanelBuilder {
	const h = "dap_appraisal_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Appraisal Latency").
		Description("Appraisal duration percentiles, including the comparable query").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(quantile("0.50", h), "p50", "A")).
		WithTarget(PromQuery(quantile("0.95", h), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TradeInOffer returns a timeseries panel showing the median and p90 trade-in
// offer.
func TradeInOffer() *timeseries.PanelBuilder {
	const h = "dap_trade_in_offer_dollars"
	return timeseries.NewPanelBuilder().
		Title("Trade-in Offers").
		Description("Median and 90th percentile trade-in offer").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(quantile("0.50", h), "median", "A")).
		WithTarget(PromQuery(quantile("0.90", h), "p90", "B")).
		Unit("currencyUSD").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ConfidenceDistribution returns a bar gauge panel showing appraisal
// confidence across histogram buckets.
func ConfidenceDistribution() *bargauge.PanelBuilder {
	return distribution("Confidence Distribution",
		"Appraisal confidence scores (0-100) over the last hour",
		"dap_appraisal_confidence")
}

// ComparablesDistribution returns a bar gauge panel showing how many
// comparables each appraisal matched.
func ComparablesDistribution() *bargauge.PanelBuilder {
	return distribution("Comparables Matched",
		"Comparables matched per appraisal over the last hour",
		"dap_appraisal_comparables")
}

func distribution(title, description, histogram string) *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(`+histogram+`_bucket{job="`+Job+`"}[1h])) by (le)`,
			"{{le}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}
