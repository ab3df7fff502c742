package main

import "errors"

// KnownMetrics is the set of metric names exported by listing-finder
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"listing_finder_http_request_duration_seconds": true,
	"listing_finder_http_requests_total":           true,

	// Health metrics.
	"listing_finder_healthz_up": true,
	"listing_finder_readyz_up":  true,

	// Search pipeline metrics.
	"listing_finder_searches_total":          true,
	"listing_finder_search_failures_total":   true,
	"listing_finder_search_duration_seconds": true,
	"listing_finder_search_results_returned": true,
	"listing_finder_listings_rejected_total": true,

	// eBay API metrics.
	"listing_finder_ebay_api_calls_total":        true,
	"listing_finder_ebay_daily_usage":            true,
	"listing_finder_ebay_daily_limit_hits_total": true,

	// Recording rules.
	"lsf:http_requests:rate5m":     true,
	"lsf:http_errors:rate5m":       true,
	"lsf:searches:rate5m":          true,
	"lsf:search_failures:rate5m":   true,
	"lsf:listings_rejected:rate5m": true,
	"lsf:ebay_api_calls:rate5m":    true,

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
