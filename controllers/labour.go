package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/models"
	"github.com/AzharuddinMalik/MAD-ERP/repository"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProjectLabour lists the active roster of a project.
func GetProjectLabour(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.LabourCollection).
		Find(ctx, bson.M{"projectId": objID, "isActive": true},
			options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list labour"})
		return
	}

	workers := make([]models.Labour, 0)
	if err = cursor.All(ctx, &workers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode labour"})
		return
	}

	c.JSON(http.StatusOK, workers)
}

// AddLabour puts a worker on a project roster.
func AddLabour(c *gin.Context) {
	var req models.LabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	projectID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := repository.Collection(repository.ProjectsCollection).
		CountDocuments(ctx, bson.M{"_id": projectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check project"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	worker := models.Labour{
		Name:      req.Name,
		Type:      req.Type,
		DailyWage: req.Wage,
		ProjectID: projectID,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	result, err := repository.Collection(repository.LabourCollection).InsertOne(ctx, worker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add worker"})
		return
	}

	worker.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusOK, worker)
}

// UpdateLabour edits a worker's name, trade or wage.
func UpdateLabour(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker id format"})
		return
	}

	var req models.LabourUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	update := bson.M{}
	if req.Name != nil && *req.Name != "" {
		update["name"] = *req.Name
	}
	if req.Type != nil {
		update["type"] = *req.Type
	}
	if req.Wage != nil && *req.Wage >= 0 {
		update["dailyWage"] = *req.Wage
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := repository.Collection(repository.LabourCollection).
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update worker"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "worker updated"})
}

// DeleteLabour takes a worker off the roster. The record stays so past
// attendance keeps its reference.
func DeleteLabour(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid worker id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := repository.Collection(repository.LabourCollection).
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove worker"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "worker removed from roster"})
}

// MarkAttendance records a day's attendance in bulk. A worker already
// marked present (or half-day) on another site the same day cannot take
// on more than one full day of work; such rows are rejected with a
// conflict unless the new status is ABSENT.
func MarkAttendance(c *gin.Context) {
	var entries []models.AttendanceEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no attendance entries"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	labourCollection := repository.Collection(repository.LabourCollection)
	attendanceCollection := repository.Collection(repository.AttendanceCollection)

	type conflict struct {
		LabourName string `json:"labourName"`
		Reason     string `json:"reason"`
	}

	saved := 0
	conflicts := make([]conflict, 0)

	for _, entry := range entries {
		labourID, err := primitive.ObjectIDFromHex(entry.LabourID)
		if err != nil {
			conflicts = append(conflicts, conflict{LabourName: entry.LabourID, Reason: "invalid worker id"})
			continue
		}
		projectID, err := primitive.ObjectIDFromHex(entry.ProjectID)
		if err != nil {
			conflicts = append(conflicts, conflict{LabourName: entry.LabourID, Reason: "invalid project id"})
			continue
		}

		var worker models.Labour
		err = labourCollection.FindOne(ctx, bson.M{"_id": labourID}).Decode(&worker)
		if err != nil {
			conflicts = append(conflicts, conflict{LabourName: entry.LabourID, Reason: "worker not found"})
			continue
		}

		newLoad := models.WorkLoad(entry.Status)
		if newLoad > 0 {
			otherLoad, err := dayLoadElsewhere(ctx, attendanceCollection, worker.Name, projectID, date)
			if err != nil {
				conflicts = append(conflicts, conflict{LabourName: worker.Name, Reason: "failed to check other sites"})
				continue
			}
			if otherLoad+newLoad > 1.0 {
				conflicts = append(conflicts, conflict{
					LabourName: worker.Name,
					Reason:     "already engaged on another site today",
				})
				continue
			}
		}

		// One row per worker per project per day
		_, err = attendanceCollection.UpdateOne(ctx,
			bson.M{"labourId": labourID, "projectId": projectID, "date": date},
			bson.M{"$set": bson.M{
				"labourName": worker.Name,
				"status":     entry.Status,
			}},
			options.Update().SetUpsert(true))
		if err != nil {
			conflicts = append(conflicts, conflict{LabourName: worker.Name, Reason: "failed to save"})
			continue
		}
		saved++
	}

	utils.Logger.Info().
		Str("date", date).
		Int("saved", saved).
		Int("conflicts", len(conflicts)).
		Msg("attendance recorded")

	status := http.StatusOK
	if saved == 0 && len(conflicts) > 0 {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{
		"date":      date,
		"saved":     saved,
		"conflicts": conflicts,
	})
}

// GetProjectAttendance returns a project's attendance for one day
// (today when ?date= is absent).
func GetProjectAttendance(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.AttendanceCollection).
		Find(ctx, bson.M{"projectId": objID, "date": date})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attendance"})
		return
	}

	records := make([]models.Attendance, 0)
	if err = cursor.All(ctx, &records); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode attendance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "records": records})
}

// dayLoadElsewhere sums a worker's attendance load on every other project
// for a day. Workers are matched by name across sites.
func dayLoadElsewhere(ctx context.Context, attendance *mongo.Collection, name string, project primitive.ObjectID, date string) (float64, error) {
	cursor, err := attendance.Find(ctx, bson.M{
		"labourName": name,
		"date":       date,
		"projectId":  bson.M{"$ne": project},
	})
	if err != nil {
		return 0, err
	}

	var records []models.Attendance
	if err = cursor.All(ctx, &records); err != nil {
		return 0, err
	}

	load := 0.0
	for _, r := range records {
		load += models.WorkLoad(r.Status)
	}
	return load, nil
}
