package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// listing-finder operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "lsf-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lsf-alerts",
					Rules: []Rule{
						{
							Alert: "LsfDown",
							Expr:  `absent(up{job="listing-finder"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing Finder is down",
								"description": "The listing-finder job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "LsfReadinessDown",
							Expr:  `listing_finder_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Listing Finder readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes; the OAuth token endpoint may be unreachable.",
							},
						},
						{
							Alert: "LsfHighErrorRate",
							Expr:  `lsf:http_errors:rate5m / lsf:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Listing Finder",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "LsfSearchFailures",
							Expr:  `lsf:search_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Search pipeline is failing",
								"description": "Search runs have been aborting on collaborator failures for more than 5 minutes.",
							},
						},
						{
							Alert: "LsfEbayQuotaHigh",
							Expr:  `listing_finder_ebay_daily_usage / 5000 > 0.8`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API quota above 80%",
								"description": "Rolling 24h eBay API usage has exceeded 80% of the daily limit.",
							},
						},
						{
							Alert: "LsfEbayLimitReached",
							Expr:  `increase(listing_finder_ebay_daily_limit_hits_total[1h]) > 0`,
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay daily API limit reached",
								"description": "Searches are being refused because the daily eBay API quota is exhausted.",
							},
						},
					},
				},
			},
		},
	}
}
