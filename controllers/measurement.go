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
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// GetProjectMeasurements returns a project's bill of quantities with
// per-item progress and the monetary rollup.
func GetProjectMeasurements(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var project models.Project
	err = repository.Collection(repository.ProjectsCollection).
		FindOne(ctx, bson.M{"_id": objID}).
		Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		}
		return
	}

	items, err := loadBOQItems(ctx, objID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bill of quantities"})
		return
	}

	type itemView struct {
		models.BOQItem
		ProgressPercent float64 `json:"progressPercent"`
	}

	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{
			BOQItem:         item,
			ProgressPercent: service.ItemProgressPercent(item),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"project": project,
		"items":   views,
		"summary": service.AggregateScope(items),
	})
}

// CreateBOQItem adds a scope line to a project's bill of quantities.
func CreateBOQItem(c *gin.Context) {
	var req models.BOQItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
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

	gstRate := req.GSTRate
	if gstRate == 0 {
		gstRate = models.DefaultGSTRate
	}

	item := models.BOQItem{
		ProjectID:      projectID,
		ItemName:       req.ItemName,
		Unit:           req.Unit,
		Rate:           req.Rate,
		TotalScope:     req.TotalScope,
		CompletedScope: 0,
		GSTRate:        gstRate,
		LastUpdated:    time.Now(),
	}

	result, err := repository.Collection(repository.BOQCollection).InsertOne(ctx, item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}

	item.ID = result.InsertedID.(primitive.ObjectID)
	utils.Logger.Info().
		Str("item", item.ItemName).
		Str("unit", item.Unit).
		Msg("BOQ item created")
	c.JSON(http.StatusOK, item)
}

// UpdateBOQItem edits a scope line. Completed scope is not editable here;
// it only moves through recorded measurements.
func UpdateBOQItem(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id format"})
		return
	}

	var req models.BOQItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	update := bson.M{"lastUpdated": time.Now()}
	if req.ItemName != nil {
		update["itemName"] = *req.ItemName
	}
	if req.Unit != nil {
		update["unit"] = *req.Unit
	}
	if req.Rate != nil && *req.Rate >= 0 {
		update["rate"] = *req.Rate
	}
	if req.TotalScope != nil && *req.TotalScope >= 0 {
		update["totalScope"] = *req.TotalScope
	}
	if req.GSTRate != nil && *req.GSTRate >= 0 {
		update["gstRate"] = *req.GSTRate
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := repository.Collection(repository.BOQCollection).
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

// DeleteBOQItem removes a scope line and its measurement history.
func DeleteBOQItem(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = repository.Collection(repository.MeasurementsCollection).
		DeleteMany(ctx, bson.M{"boqId": objID})

	result, err := repository.Collection(repository.BOQCollection).
		DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item and its measurements deleted"})
}

// RecordMeasurement appends a field measurement to a BOQ item and moves
// its completed scope forward. Measurements past the remaining scope are
// accepted but flagged so the office can review the overrun.
func RecordMeasurement(c *gin.Context) {
	var req models.MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	boqID, err := primitive.ObjectIDFromHex(req.BOQID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	boqCollection := repository.Collection(repository.BOQCollection)

	var item models.BOQItem
	err = boqCollection.FindOne(ctx, bson.M{"_id": boqID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		}
		return
	}

	eval := service.EvaluateMeasurement(item, req.Length, req.Width)
	if eval.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "measurement produces zero quantity"})
		return
	}

	supervisorName := req.SupervisorName
	if supervisorName == "" {
		if user, err := utils.GetUser(c); err == nil {
			supervisorName = user.Username
		}
	}

	measurement := models.DailyMeasurement{
		BOQID:          boqID,
		Date:           time.Now(),
		Length:         req.Length,
		Width:          req.Width,
		Quantity:       eval.Quantity,
		Remarks:        req.Remarks,
		SupervisorName: supervisorName,
	}

	if _, err := repository.Collection(repository.MeasurementsCollection).InsertOne(ctx, measurement); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save measurement"})
		return
	}

	_, err = boqCollection.UpdateOne(ctx, bson.M{"_id": boqID}, bson.M{
		"$inc": bson.M{"completedScope": eval.Quantity},
		"$set": bson.M{"lastUpdated": time.Now()},
	})
	if err != nil {
		utils.Logger.Error().Err(err).Msg("measurement saved but scope increment failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item scope"})
		return
	}

	utils.Logger.Info().
		Str("item", item.ItemName).
		Float64("quantity", eval.Quantity).
		Bool("overLimit", eval.OverLimit).
		Msg("measurement recorded")

	response := gin.H{
		"quantity":       eval.Quantity,
		"remainingScope": service.Round2(eval.RemainingScope - eval.Quantity),
		"overLimit":      eval.OverLimit,
	}
	if eval.OverLimit {
		response["warning"] = "measurement exceeds remaining scope"
	}
	c.JSON(http.StatusOK, response)
}

// GetMeasurementHistory lists the recorded measurements of one BOQ item,
// newest first.
func GetMeasurementHistory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.MeasurementsCollection).
		Find(ctx, bson.M{"boqId": objID}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load measurements"})
		return
	}

	measurements := make([]models.DailyMeasurement, 0)
	if err = cursor.All(ctx, &measurements); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode measurements"})
		return
	}

	c.JSON(http.StatusOK, measurements)
}

// GetProjectBilling values the work completed so far with GST applied.
func GetProjectBilling(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := loadBOQItems(ctx, objID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bill of quantities"})
		return
	}

	c.JSON(http.StatusOK, service.ComputeBilling(items))
}

// loadBOQItems fetches a project's bill of quantities in insertion order.
func loadBOQItems(ctx context.Context, projectID primitive.ObjectID) ([]models.BOQItem, error) {
	cursor, err := repository.Collection(repository.BOQCollection).
		Find(ctx, bson.M{"projectId": projectID})
	if err != nil {
		return nil, err
	}

	items := make([]models.BOQItem, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
