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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPublicProject serves the unauthenticated client view by project id.
func GetPublicProject(c *gin.Context) {
	servePublicView(c, c.Param("id"))
}

// GetSharedProject resolves a share token and serves the client view.
func GetSharedProject(c *gin.Context) {
	projectID, err := utils.DecodeShareToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	servePublicView(c, projectID)
}

// servePublicView builds the sanitized client view: project header,
// scope progress and the recent photo updates. Internal fields like
// rates stay on BOQ items because clients see their own bill; operator
// accounts and rosters are never exposed here.
func servePublicView(c *gin.Context, projectID string) {
	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid link"})
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

	updates := make([]models.SiteUpdate, 0)
	cursor, err := repository.Collection(repository.SiteUpdatesCollection).
		Find(ctx, bson.M{"projectId": objID},
			options.Find().SetSort(bson.M{"updateTime": -1}).SetLimit(10))
	if err == nil {
		_ = cursor.All(ctx, &updates)
	}

	c.JSON(http.StatusOK, gin.H{
		"project": models.PublicProjectView{
			Name:       project.Name,
			ClientName: project.ClientName,
			Location:   project.Location,
			StartDate:  project.StartDate,
			Status:     project.Status,
		},
		"items":   items,
		"summary": service.AggregateScope(items),
		"updates": updates,
	})
}
