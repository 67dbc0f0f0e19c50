package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastRefresh returns a stat panel showing time since the inventory snapshot
// was last rebuilt.
func LastRefresh() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Snapshot Refresh").
		Description("Time since the comparable pool was last reloaded").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - max(`+jobSel("dap_inventory_refresh_timestamp_seconds")+`)`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(900, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// RefreshFailures returns a stat panel counting failed snapshot refreshes in
// the past 24 hours.
func RefreshFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Refresh Failures (24h)").
		Description("Inventory snapshot refreshes that failed and kept the previous pool").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(dap_inventory_refresh_total{job="`+Job+`",result="error"}[24h]))`,
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// CacheHitRatio returns a timeseries panel showing the dealership name cache
// hit ratio.
func CacheHitRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dealer Cache Hit Ratio").
		Description("Share of dealership name lookups served from Redis").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`dap:dealer_cache_hits:rate5m / (dap:dealer_cache_hits:rate5m + dap:dealer_cache_misses:rate5m) * 100`,
			"hit %", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsRedGreen(50)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CacheErrors returns a timeseries panel showing Redis errors from the
// dealership name cache.
func CacheErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dealer Cache Errors").
		Description("Redis errors per second; lookups fall back to Postgres").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(rate(`+jobSel("dap_dealer_cache_errors_total")+`[5m]))`, "errors/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
