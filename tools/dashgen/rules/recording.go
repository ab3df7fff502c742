package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "lsf-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lsf-recording",
					Rules: []Rule{
						{
							Record: "lsf:http_requests:rate5m",
							Expr:   `sum(rate(listing_finder_http_requests_total[5m]))`,
						},
						{
							Record: "lsf:http_errors:rate5m",
							Expr:   `sum(rate(listing_finder_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "lsf:searches:rate5m",
							Expr:   `rate(listing_finder_searches_total[5m])`,
						},
						{
							Record: "lsf:search_failures:rate5m",
							Expr:   `rate(listing_finder_search_failures_total[5m])`,
						},
						{
							Record: "lsf:listings_rejected:rate5m",
							Expr:   `rate(listing_finder_listings_rejected_total[5m])`,
						},
						{
							Record: "lsf:ebay_api_calls:rate5m",
							Expr:   `rate(listing_finder_ebay_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
