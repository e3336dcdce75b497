package models

// CityStats is one row of the dashboard's per-city table.
type CityStats struct {
	City           string `json:"city"`
	TotalProjects  int64  `json:"totalProjects"`
	RunningCount   int64  `json:"runningCount"`
	CompletedCount int64  `json:"completedCount"`
}

// Alert is one dashboard attention item.
type Alert struct {
	Type    string `json:"type"` // "error", "warning", "info"
	Title   string `json:"title"`
	Message string `json:"message"`
}

// DayLabourStat is one point of the weekly labour trend.
type DayLabourStat struct {
	Day     string `json:"day"`  // "Mon"
	Date    string `json:"date"` // YYYY-MM-DD
	Workers int64  `json:"workers"`
}

// GlobalStats backs the dashboard summary cards.
type GlobalStats struct {
	TotalProjects             int64            `json:"totalProjects"`
	ActiveProjects            int64            `json:"activeProjects"`
	TotalLabour               int64            `json:"totalLabour"`
	CityCount                 int64            `json:"cityCount"`
	ProjectStatusDistribution map[string]int64 `json:"projectStatusDistribution"`
	WeeklyLabourTrend         []DayLabourStat  `json:"weeklyLabourTrend"`
}
