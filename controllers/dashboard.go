package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/models"
	"github.com/AzharuddinMalik/MAD-ERP/repository"
	"github.com/AzharuddinMalik/MAD-ERP/service"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetDashboardData assembles the whole dashboard in one round trip:
// summary cards, per-city table, attention items, the weekly labour
// trend and the latest site updates.
func GetDashboardData(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projects, err := loadProjectsWithLabourCounts(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	totalLabour, err := repository.Collection(repository.LabourCollection).
		CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		totalLabour = 0
	}

	stats := service.GlobalStatsFrom(projects, totalLabour)
	stats.WeeklyLabourTrend = weeklyLabourTrend(ctx)

	recentUpdates := make([]models.SiteUpdate, 0)
	cursor, err := repository.Collection(repository.SiteUpdatesCollection).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"updateTime": -1}).SetLimit(10))
	if err == nil {
		_ = cursor.All(ctx, &recentUpdates)
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":         stats,
		"cityStats":     service.CityStatsFrom(projects),
		"alerts":        service.DashboardAlerts(projects),
		"projects":      projects,
		"recentUpdates": recentUpdates,
	})
}

// weeklyLabourTrend counts working attendance over the last seven days,
// half days included. A day with no records still appears at zero.
func weeklyLabourTrend(ctx context.Context) []models.DayLabourStat {
	attendance := repository.Collection(repository.AttendanceCollection)
	trend := make([]models.DayLabourStat, 0, 7)

	for i := 6; i >= 0; i-- {
		day := time.Now().AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		count, err := attendance.CountDocuments(ctx, bson.M{
			"date":   date,
			"status": bson.M{"$in": []string{models.AttendancePresent, models.AttendanceHalfDay}},
		})
		if err != nil {
			count = 0
		}

		trend = append(trend, models.DayLabourStat{
			Day:     day.Format("Mon"),
			Date:    date,
			Workers: count,
		})
	}

	return trend
}
