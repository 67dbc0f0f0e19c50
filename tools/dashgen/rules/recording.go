package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "dap-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "dap-recording",
					Rules: []Rule{
						{
							Record: "dap:http_requests:rate5m",
							Expr:   `sum(rate(dap_http_requests_total[5m]))`,
						},
						{
							Record: "dap:http_errors:rate5m",
							Expr:   `sum(rate(dap_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "dap:appraisals:rate5m",
							Expr:   `sum by (decision, method) (rate(dap_appraisals_total[5m]))`,
						},
						{
							Record: "dap:appraisal_errors:rate5m",
							Expr:   `sum(rate(dap_appraisal_errors_total{reason!="validation"}[5m]))`,
						},
						{
							Record: "dap:dealer_cache_hits:rate5m",
							Expr:   `sum(rate(dap_dealer_cache_hits_total[5m]))`,
						},
						{
							Record: "dap:dealer_cache_misses:rate5m",
							Expr:   `sum(rate(dap_dealer_cache_misses_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
