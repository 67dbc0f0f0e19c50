package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// dealer-appraisal operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dap-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dap-alerts",
					Rules: []Rule{
						{
							Alert:  "DapDown",
							Expr:   `absent(up{job="dealer-appraisal"})`,
							For:    "2m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "Dealer appraisal service is down",
								"description": "The dealer-appraisal job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "DapReadinessDown",
							Expr:   `dap_readyz_up == 0`,
							For:    "2m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "Dealer appraisal readiness check is failing",
								"description": "The readiness probe cannot reach Postgres and has reported not-ready for more than 2 minutes.",
							},
						},
						{
							Alert:  "DapHighErrorRate",
							Expr:   `dap:http_errors:rate5m / dap:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the appraisal API",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "DapAppraisalFailures",
							Expr:   `dap:appraisal_errors:rate5m > 0`,
							For:    "5m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "Appraisals are failing",
								"description": "Appraisals have failed for reasons other than request validation for more than 5 minutes.",
							},
						},
						{
							Alert:  "DapSlowAppraisals",
							Expr:   `histogram_quantile(0.95, sum(rate(dap_appraisal_duration_seconds_bucket[5m])) by (le)) > 2`,
							For:    "10m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "Appraisal latency is elevated",
								"description": "The 95th percentile appraisal took longer than 2 seconds for 10 minutes.",
							},
						},
						{
							Alert:  "DapInventoryStale",
							Expr:   `time() - dap_inventory_refresh_timestamp_seconds > 3600`,
							For:    "5m",
							Labels: map[string]string{"severity": "warning"},
							Annotations: map[string]string{
								"summary":     "Inventory snapshot is stale",
								"description": "The comparable pool has not refreshed successfully for over an hour; offers are priced against old inventory.",
							},
						},
						{
							Alert:  "DapEmptyComparablePool",
							Expr:   `dap_inventory_snapshot_vehicles == 0 and dap_inventory_refresh_timestamp_seconds > 0`,
							For:    "5m",
							Labels: map[string]string{"severity": "critical"},
							Annotations: map[string]string{
								"summary":     "Comparable pool is empty",
								"description": "The inventory snapshot holds no vehicles; every appraisal falls back to depreciation.",
							},
						},
						{
							Alert:  "DapDealerCacheErrors",
							Expr:   `increase(dap_dealer_cache_errors_total[5m]) > 10`,
							For:    "5m",
							Labels: map[string]string{"severity": "info"},
							Annotations: map[string]string{
								"summary":     "Dealer name cache is erroring",
								"description": "Redis errors are forcing dealership name lookups to Postgres.",
							},
						},
					},
				},
			},
		},
	}
}
