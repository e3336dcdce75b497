package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/AzharuddinMalik/MAD-ERP/models"
)

// UnassignedCity groups projects that have no city reference.
const UnassignedCity = "Unassigned"

// statusPriority orders project lists: active work floats to the top.
// Unknown statuses sink to the bottom.
var statusPriority = map[models.ProjectStatus]int{
	models.StatusRunning:   1,
	models.StatusOnHold:    2,
	models.StatusDelayed:   3,
	models.StatusCompleted: 4,
}

// StatusPriority returns the sort rank of a status, 99 when unrecognized.
func StatusPriority(status models.ProjectStatus) int {
	if p, ok := statusPriority[status]; ok {
		return p
	}
	return 99
}

// FilterProjects keeps projects whose name or client name contains the
// search term, case-insensitively. An empty term keeps everything.
func FilterProjects(projects []models.Project, search string) []models.Project {
	if search == "" {
		return projects
	}

	term := strings.ToLower(search)
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.ClientName), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GroupProjectsByCity partitions projects by city name, sorting each group
// by status priority. Every project lands in exactly one group; projects
// without a city land under UnassignedCity. The sort is stable, so
// projects with equal status keep their input order.
func GroupProjectsByCity(projects []models.Project) map[string][]models.Project {
	grouped := make(map[string][]models.Project)
	for _, p := range projects {
		city := p.CityName
		if city == "" {
			city = UnassignedCity
		}
		grouped[city] = append(grouped[city], p)
	}

	for city := range grouped {
		group := grouped[city]
		sort.SliceStable(group, func(i, j int) bool {
			return StatusPriority(group[i].Status) < StatusPriority(group[j].Status)
		})
	}

	return grouped
}

// CityStatsFrom builds the per-city dashboard table. Projects without a
// city are skipped, matching the original report.
func CityStatsFrom(projects []models.Project) []models.CityStats {
	byCity := make(map[string]*models.CityStats)
	order := make([]string, 0)

	for _, p := range projects {
		if p.CityName == "" {
			continue
		}
		stats, ok := byCity[p.CityName]
		if !ok {
			stats = &models.CityStats{City: p.CityName}
			byCity[p.CityName] = stats
			order = append(order, p.CityName)
		}
		stats.TotalProjects++
		switch p.Status {
		case models.StatusRunning:
			stats.RunningCount++
		case models.StatusCompleted:
			stats.CompletedCount++
		}
	}

	result := make([]models.CityStats, 0, len(order))
	for _, city := range order {
		result = append(result, *byCity[city])
	}
	return result
}

// GlobalStatsFrom builds the dashboard summary cards from the full
// project list and the total labour headcount.
func GlobalStatsFrom(projects []models.Project, totalLabour int64) models.GlobalStats {
	stats := models.GlobalStats{
		TotalProjects:             int64(len(projects)),
		TotalLabour:               totalLabour,
		ProjectStatusDistribution: make(map[string]int64),
	}

	cities := make(map[string]bool)
	for _, p := range projects {
		if p.Status != models.StatusCompleted {
			stats.ActiveProjects++
		}
		if p.Status != "" {
			stats.ProjectStatusDistribution[string(p.Status)]++
		}
		if p.CityName != "" {
			cities[p.CityName] = true
		}
	}
	stats.CityCount = int64(len(cities))

	return stats
}

// lowLabourThreshold triggers an info alert on running projects.
const lowLabourThreshold = 5

// DashboardAlerts derives attention items from project state.
func DashboardAlerts(projects []models.Project) []models.Alert {
	alerts := make([]models.Alert, 0)

	for _, p := range projects {
		switch {
		case p.Status == models.StatusDelayed:
			alerts = append(alerts, models.Alert{
				Type:    "error",
				Title:   "Project Delayed: " + p.Name,
				Message: "Immediate attention required.",
			})
		case p.Status == models.StatusOnHold:
			alerts = append(alerts, models.Alert{
				Type:    "warning",
				Title:   "Project On Hold: " + p.Name,
				Message: "Waiting for clearance.",
			})
		case p.Status == models.StatusRunning && p.LabourCount < lowLabourThreshold:
			alerts = append(alerts, models.Alert{
				Type:    "info",
				Title:   "Low Labour: " + p.Name,
				Message: formatLowLabour(p.LabourCount),
			})
		}
	}

	return alerts
}

func formatLowLabour(count int) string {
	if count == 1 {
		return "Only 1 worker."
	}
	return "Only " + strconv.Itoa(count) + " workers."
}
