package controllers

import (
	"context"
	"net/http"
	"strconv"
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

// GetMyProjects lists the projects assigned to the calling supervisor.
func GetMyProjects(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	supervisorID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.ProjectsCollection).
		Find(ctx, bson.M{"supervisorId": supervisorID},
			options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	projects := make([]models.Project, 0)
	if err = cursor.All(ctx, &projects); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// PostDailyUpdate takes the supervisor's end-of-day report: a note, up to
// two photos, the headcount and optionally a status change. A project on
// hold starts running again as soon as a headcount above zero comes in.
func PostDailyUpdate(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	projectID := c.PostForm("projectId")
	remark := c.PostForm("remark")
	if projectID == "" || remark == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId and remark are required"})
		return
	}

	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	supervisorID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supervisor id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projectCollection := repository.Collection(repository.ProjectsCollection)

	var project models.Project
	err = projectCollection.FindOne(ctx, bson.M{
		"_id":          objID,
		"supervisorId": supervisorID,
	}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusForbidden, gin.H{"error": "project is not assigned to you"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		}
		return
	}

	update := models.SiteUpdate{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Content:     remark,
		UpdateTime:  time.Now(),
	}

	if file, err := c.FormFile("photo1"); err == nil {
		url, err := fileStore.Save(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
			return
		}
		update.PhotoURL1 = url
	}
	if file, err := c.FormFile("photo2"); err == nil {
		url, err := fileStore.Save(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
			return
		}
		update.PhotoURL2 = url
	}

	if _, err := repository.Collection(repository.SiteUpdatesCollection).InsertOne(ctx, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save update"})
		return
	}

	projectChanges := bson.M{"updatedAt": time.Now()}

	if status := c.PostForm("status"); status != "" {
		projectChanges["status"] = models.ProjectStatus(status)
	}

	if raw := c.PostForm("labourCount"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err == nil && count >= 0 {
			projectChanges["labourCount"] = count
			if project.Status == models.StatusOnHold && count > 0 && c.PostForm("status") == "" {
				projectChanges["status"] = models.StatusRunning
			}
		}
	}

	if _, err := projectCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": projectChanges}); err != nil {
		utils.Logger.Error().Err(err).Msg("daily update saved but project fields failed")
	}

	utils.Logger.Info().
		Str("project", project.Name).
		Str("supervisor", user.Username).
		Msg("daily update posted")

	c.JSON(http.StatusOK, gin.H{"message": "update posted successfully"})
}

// GetProjectUpdates lists a project's site updates, newest first.
func GetProjectUpdates(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.SiteUpdatesCollection).
		Find(ctx, bson.M{"projectId": objID},
			options.Find().SetSort(bson.M{"updateTime": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load updates"})
		return
	}

	updates := make([]models.SiteUpdate, 0)
	if err = cursor.All(ctx, &updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode updates"})
		return
	}

	c.JSON(http.StatusOK, updates)
}
