package main

import "errors"

// KnownMetrics is the set of metric names exported by dealer-appraisal
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"dap_http_request_duration_seconds": true,
	"dap_http_requests_total":           true,
	"dap_http_rate_limited_total":       true,

	// Health metrics.
	"dap_healthz_up": true,
	"dap_readyz_up":  true,

	// Appraisal metrics.
	"dap_appraisals_total":           true,
	"dap_appraisal_errors_total":     true,
	"dap_appraisal_duration_seconds": true,
	"dap_appraisal_comparables":      true,
	"dap_appraisal_confidence":       true,
	"dap_trade_in_offer_dollars":     true,

	// Inventory snapshot metrics.
	"dap_inventory_snapshot_vehicles":         true,
	"dap_inventory_refresh_total":             true,
	"dap_inventory_refresh_timestamp_seconds": true,

	// Dealer name cache metrics.
	"dap_dealer_cache_hits_total":   true,
	"dap_dealer_cache_misses_total": true,
	"dap_dealer_cache_errors_total": true,

	// Recording rules.
	"dap:http_requests:rate5m":       true,
	"dap:http_errors:rate5m":         true,
	"dap:appraisals:rate5m":          true,
	"dap:appraisal_errors:rate5m":    true,
	"dap:dealer_cache_hits:rate5m":   true,
	"dap:dealer_cache_misses:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
