package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SearchRate returns a timeseries panel showing pipeline runs and
// collaborator failures per second.
func SearchRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Rate").
		Description("Search pipeline runs and failures per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`lsf:searches:rate5m`, "searches/s", "A")).
		WithTarget(PromQuery(`lsf:search_failures:rate5m`, "failures/s", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchLatency returns a timeseries panel showing p50 and p95 pipeline
// durations.
func SearchLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Search Latency").
		Description("Full pipeline duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(listing_finder_search_duration_seconds_bucket{job="listing-finder"}[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(listing_finder_search_duration_seconds_bucket{job="listing-finder"}[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ResultsPerSearch returns a timeseries panel showing the average number
// of listings returned per search.
func ResultsPerSearch() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Results per Search").
		Description("Average listings returned per search after filtering").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`rate(listing_finder_search_results_returned_sum{job="listing-finder"}[5m]) / rate(listing_finder_search_results_returned_count{job="listing-finder"}[5m])`,
			"avg results", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RejectedRate returns a timeseries panel showing normalization rejections
// per second.
func RejectedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejected Listings").
		Description("Raw listings rejected during normalization per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`lsf:listings_rejected:rate5m`, "rejected/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
