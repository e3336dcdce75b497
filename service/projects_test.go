package service

import (
	"testing"

	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPriority(t *testing.T) {
	assert.Equal(t, 1, StatusPriority(models.StatusRunning))
	assert.Equal(t, 2, StatusPriority(models.StatusOnHold))
	assert.Equal(t, 3, StatusPriority(models.StatusDelayed))
	assert.Equal(t, 4, StatusPriority(models.StatusCompleted))
	assert.Equal(t, 99, StatusPriority("ARCHIVED"), "unknown statuses sink to the bottom")
}

func TestFilterProjects(t *testing.T) {
	projects := []models.Project{
		{Name: "Skyline Towers", ClientName: "Mehta Builders"},
		{Name: "Green Acres", ClientName: "Sharma Estates"},
		{Name: "Riverfront Mall", ClientName: "Mehta Builders"},
	}

	t.Run("empty term keeps everything", func(t *testing.T) {
		assert.Len(t, FilterProjects(projects, ""), 3)
	})

	t.Run("matches project name case-insensitively", func(t *testing.T) {
		got := FilterProjects(projects, "SKYLINE")
		require.Len(t, got, 1)
		assert.Equal(t, "Skyline Towers", got[0].Name)
	})

	t.Run("matches client name", func(t *testing.T) {
		got := FilterProjects(projects, "mehta")
		assert.Len(t, got, 2)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		assert.Empty(t, FilterProjects(projects, "nothing"))
	})
}

func TestGroupProjectsByCity(t *testing.T) {
	projects := []models.Project{
		{Name: "A", CityName: "Pune", Status: models.StatusCompleted},
		{Name: "B", CityName: "Pune", Status: models.StatusRunning},
		{Name: "C", CityName: ""},
		{Name: "D", CityName: "Nagpur", Status: models.StatusDelayed},
		{Name: "E", CityName: "Pune", Status: models.StatusOnHold},
	}

	grouped := GroupProjectsByCity(projects)

	t.Run("every project lands in exactly one group", func(t *testing.T) {
		total := 0
		for _, group := range grouped {
			total += len(group)
		}
		assert.Equal(t, len(projects), total)
	})

	t.Run("missing city falls into Unassigned", func(t *testing.T) {
		require.Contains(t, grouped, UnassignedCity)
		assert.Equal(t, "C", grouped[UnassignedCity][0].Name)
	})

	t.Run("groups sort by status priority", func(t *testing.T) {
		pune := grouped["Pune"]
		require.Len(t, pune, 3)
		assert.Equal(t, "B", pune[0].Name) // RUNNING
		assert.Equal(t, "E", pune[1].Name) // ON_HOLD
		assert.Equal(t, "A", pune[2].Name) // COMPLETED
	})

	t.Run("equal statuses keep input order", func(t *testing.T) {
		same := []models.Project{
			{Name: "first", CityName: "Pune", Status: models.StatusRunning},
			{Name: "second", CityName: "Pune", Status: models.StatusRunning},
		}
		got := GroupProjectsByCity(same)["Pune"]
		assert.Equal(t, "first", got[0].Name)
		assert.Equal(t, "second", got[1].Name)
	})

	t.Run("unknown status sinks below known ones", func(t *testing.T) {
		mixed := []models.Project{
			{Name: "odd", CityName: "Pune", Status: "ARCHIVED"},
			{Name: "done", CityName: "Pune", Status: models.StatusCompleted},
		}
		got := GroupProjectsByCity(mixed)["Pune"]
		assert.Equal(t, "done", got[0].Name)
		assert.Equal(t, "odd", got[1].Name)
	})
}

func TestCityStatsFrom(t *testing.T) {
	projects := []models.Project{
		{CityName: "Pune", Status: models.StatusRunning},
		{CityName: "Pune", Status: models.StatusCompleted},
		{CityName: "Nagpur", Status: models.StatusOnHold},
		{CityName: "", Status: models.StatusRunning},
	}

	stats := CityStatsFrom(projects)
	require.Len(t, stats, 2, "projects without a city are skipped")

	assert.Equal(t, "Pune", stats[0].City)
	assert.Equal(t, int64(2), stats[0].TotalProjects)
	assert.Equal(t, int64(1), stats[0].RunningCount)
	assert.Equal(t, int64(1), stats[0].CompletedCount)

	assert.Equal(t, "Nagpur", stats[1].City)
	assert.Equal(t, int64(1), stats[1].TotalProjects)
	assert.Equal(t, int64(0), stats[1].RunningCount)
}

func TestGlobalStatsFrom(t *testing.T) {
	projects := []models.Project{
		{CityName: "Pune", Status: models.StatusRunning},
		{CityName: "Pune", Status: models.StatusCompleted},
		{CityName: "Nagpur", Status: models.StatusDelayed},
	}

	stats := GlobalStatsFrom(projects, 42)

	assert.Equal(t, int64(3), stats.TotalProjects)
	assert.Equal(t, int64(2), stats.ActiveProjects, "completed projects are not active")
	assert.Equal(t, int64(42), stats.TotalLabour)
	assert.Equal(t, int64(2), stats.CityCount)
	assert.Equal(t, int64(1), stats.ProjectStatusDistribution["RUNNING"])
	assert.Equal(t, int64(1), stats.ProjectStatusDistribution["COMPLETED"])
	assert.Equal(t, int64(1), stats.ProjectStatusDistribution["DELAYED"])
}

func TestDashboardAlerts(t *testing.T) {
	projects := []models.Project{
		{Name: "Late", Status: models.StatusDelayed},
		{Name: "Paused", Status: models.StatusOnHold},
		{Name: "Thin", Status: models.StatusRunning, LabourCount: 1},
		{Name: "Staffed", Status: models.StatusRunning, LabourCount: 20},
		{Name: "Done", Status: models.StatusCompleted},
	}

	alerts := DashboardAlerts(projects)
	require.Len(t, alerts, 3)

	assert.Equal(t, "error", alerts[0].Type)
	assert.Contains(t, alerts[0].Title, "Late")

	assert.Equal(t, "warning", alerts[1].Type)
	assert.Contains(t, alerts[1].Title, "Paused")

	assert.Equal(t, "info", alerts[2].Type)
	assert.Contains(t, alerts[2].Title, "Thin")
	assert.Equal(t, "Only 1 worker.", alerts[2].Message)
}
