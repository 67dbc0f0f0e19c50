// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/dealer-appraisal/tools/dashgen/panels"
)

// UID is the stable Grafana identifier of the overview dashboard.
const UID = "dap-overview"

// BuildOverview constructs the Dealer Appraisal overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Dealer Appraisal Overview").
		Uid(UID).
		Tags([]string{"dap", "dealer-appraisal"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.SnapshotSizeStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RateLimited()))

	b.WithRow(dashboard.NewRowBuilder("Appraisals").
		WithPanel(panels.DecisionRate()).
		WithPanel(panels.ValuationMethods()).
		WithPanel(panels.AppraisalErrors()).
		WithPanel(panels.AppraisalLatency()).
		WithPanel(panels.TradeInOffer()).
		WithPanel(panels.ConfidenceDistribution()).
		WithPanel(panels.ComparablesDistribution()))

	b.WithRow(dashboard.NewRowBuilder("Inventory & Cache").
		WithPanel(panels.LastRefresh()).
		WithPanel(panels.RefreshFailures()).
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.CacheErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
