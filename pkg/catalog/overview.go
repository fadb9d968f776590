package catalog

// OverviewSummary aggregates headline numbers across the whole catalog for
// the landing view.
type OverviewSummary struct {
	TotalConcurrentPlayers float64 `json:"total_concurrent_players"`
	TotalGameServers       float64 `json:"total_game_servers"`
	TotalGames             float64 `json:"total_games"`
	EdgeLocations          float64 `json:"edge_locations"`
	RequestsPerSecond      float64 `json:"requests_per_second"`
	DataProcessedPerDayTB  float64 `json:"data_processed_per_day_tb"`
	UptimePercentage       float64 `json:"uptime_percentage"`
}

// Overview folds the capacity metrics of every component into a summary.
// Counts are summed; rates and percentages take the maximum observed, since
// a single request traverses several components and summing per-component
// rates would double-count it. Components lacking a metric contribute zero;
// this never fails.
func (c *Catalog) Overview() OverviewSummary {
	var o OverviewSummary
	for _, comp := range c.ordered {
		o.TotalGameServers += metricValue(comp.CapacityMetrics, "servers_count")
		o.TotalGames += metricValue(comp.CapacityMetrics, "games_hosted")
		o.EdgeLocations += metricValue(comp.CapacityMetrics, "edge_locations")
		o.DataProcessedPerDayTB += metricValue(comp.CapacityMetrics, "data_processing_tb_per_day")

		o.TotalConcurrentPlayers = maxOf(o.TotalConcurrentPlayers, metricValue(comp.CapacityMetrics, "concurrent_connections"))
		o.RequestsPerSecond = maxOf(o.RequestsPerSecond, metricValue(comp.CapacityMetrics, "requests_per_second"))
		o.UptimePercentage = maxOf(o.UptimePercentage, metricValue(comp.CapacityMetrics, "availability"))
	}
	return o
}

// metricValue reads a numeric metric, tolerating the numeric types that
// survive JSON round-trips. Missing or non-numeric values count as zero.
func metricValue(m Metrics, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func maxOf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
