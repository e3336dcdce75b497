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

// fileStore holds uploaded site photos. Set once at startup.
var fileStore *service.FileStore

// SetFileStore wires the upload store into the handlers.
func SetFileStore(fs *service.FileStore) {
	fileStore = fs
}

// GetAllProjects lists projects with live labour counts. An optional
// ?search= term filters by project or client name; the response carries
// both the flat list and the city-grouped view.
func GetAllProjects(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projects, err := loadProjectsWithLabourCounts(ctx)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	filtered := service.FilterProjects(projects, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"projects":      filtered,
		"groupedByCity": service.GroupProjectsByCity(filtered),
	})
}

// GetProjectByID returns one project for the edit/audit views.
func GetProjectByID(c *gin.Context) {
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

	c.JSON(http.StatusOK, project)
}

// CreateProject registers a new project under a city, optionally assigned
// to a supervisor.
func CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	city, err := findCity(ctx, req.CityID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	status := models.StatusRunning
	if req.Status != "" {
		status = req.Status
	}

	now := time.Now()
	project := models.Project{
		Name:          req.Name,
		ClientName:    req.ClientName,
		Location:      req.Location,
		PlotNo:        req.PlotNo,
		Colony:        req.Colony,
		Pincode:       req.Pincode,
		District:      req.District,
		State:         req.State,
		ProjectType:   req.ProjectType,
		SquareFeet:    req.SquareFeet,
		Budget:        req.Budget,
		ReraNumber:    req.ReraNumber,
		FireNocNumber: req.FireNocNumber,
		Status:        status,
		StartDate:     req.StartDate,
		LabourCount:   0,
		CityID:        city.ID,
		CityName:      city.Name,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if req.SupervisorID != "" {
		supervisor, err := findSupervisor(ctx, req.SupervisorID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		project.SupervisorID = supervisor.ID
		project.SupervisorName = supervisor.Username
	}

	result, err := repository.Collection(repository.ProjectsCollection).InsertOne(ctx, project)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("failed to create project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	project.ID = result.InsertedID.(primitive.ObjectID)
	utils.Logger.Info().Str("project", project.Name).Str("city", project.CityName).Msg("project created")
	c.JSON(http.StatusOK, project)
}

// UpdateProject replaces a project's editable fields. An empty
// supervisorId clears the assignment.
func UpdateProject(c *gin.Context) {
	projectID := c.Param("id")

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projectCollection := repository.Collection(repository.ProjectsCollection)

	var existing models.Project
	err = projectCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		}
		return
	}

	update := bson.M{
		"name":       req.Name,
		"clientName": req.ClientName,
		"location":   req.Location,
		"updatedAt":  time.Now(),
	}
	if !req.StartDate.IsZero() {
		update["startDate"] = req.StartDate
	}
	if req.PlotNo != "" {
		update["plotNo"] = req.PlotNo
	}
	if req.Colony != "" {
		update["colony"] = req.Colony
	}
	if req.Pincode != "" {
		update["pincode"] = req.Pincode
	}
	if req.District != "" {
		update["district"] = req.District
	}
	if req.State != "" {
		update["state"] = req.State
	}
	if req.ProjectType != "" {
		update["projectType"] = req.ProjectType
	}
	if req.SquareFeet != 0 {
		update["squareFeet"] = req.SquareFeet
	}
	if req.Budget != 0 {
		update["budget"] = req.Budget
	}
	if req.ReraNumber != "" {
		update["reraNumber"] = req.ReraNumber
	}
	if req.FireNocNumber != "" {
		update["fireNocNumber"] = req.FireNocNumber
	}
	if req.Status != "" {
		update["status"] = req.Status
	}

	if req.CityID != "" {
		city, err := findCity(ctx, req.CityID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		update["cityId"] = city.ID
		update["cityName"] = city.Name
	}

	unset := bson.M{}
	if req.SupervisorID != "" {
		supervisor, err := findSupervisor(ctx, req.SupervisorID)
		if err != nil {
			utils.HandleError(c, err)
			return
		}
		update["supervisorId"] = supervisor.ID
		update["supervisorName"] = supervisor.Username
	} else {
		unset["supervisorId"] = ""
		unset["supervisorName"] = ""
	}

	changes := bson.M{"$set": update}
	if len(unset) > 0 {
		changes["$unset"] = unset
	}

	result, err := projectCollection.UpdateOne(ctx, bson.M{"_id": objID}, changes)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("failed to update project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	var updated models.Project
	if err := projectCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&updated); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "project updated"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// QuickUpdateProject adjusts status and labour count without touching the
// rest of the record.
func QuickUpdateProject(c *gin.Context) {
	var req models.ProjectQuickUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	objID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	update := bson.M{"updatedAt": time.Now()}
	if req.Status != "" {
		update["status"] = req.Status
	}
	if req.LabourCount != nil && *req.LabourCount >= 0 {
		update["labourCount"] = *req.LabourCount
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := repository.Collection(repository.ProjectsCollection).
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project updated"})
}

// DeleteProject removes a project together with its attendance, labour,
// BOQ items, measurements and site updates.
func DeleteProject(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projectCollection := repository.Collection(repository.ProjectsCollection)

	var project models.Project
	err = projectCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		}
		return
	}

	// Measurements hang off BOQ items, not the project
	boqCollection := repository.Collection(repository.BOQCollection)
	cursor, err := boqCollection.Find(ctx, bson.M{"projectId": objID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err == nil {
		var boqIDs []struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err = cursor.All(ctx, &boqIDs); err == nil && len(boqIDs) > 0 {
			ids := make([]primitive.ObjectID, len(boqIDs))
			for i, b := range boqIDs {
				ids[i] = b.ID
			}
			_, _ = repository.Collection(repository.MeasurementsCollection).
				DeleteMany(ctx, bson.M{"boqId": bson.M{"$in": ids}})
		}
	}

	projectFilter := bson.M{"projectId": objID}
	_, _ = repository.Collection(repository.AttendanceCollection).DeleteMany(ctx, projectFilter)
	_, _ = repository.Collection(repository.LabourCollection).DeleteMany(ctx, projectFilter)
	_, _ = boqCollection.DeleteMany(ctx, projectFilter)
	_, _ = repository.Collection(repository.SiteUpdatesCollection).DeleteMany(ctx, projectFilter)

	result, err := projectCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		utils.Logger.Error().Err(err).Msg("failed to delete project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	utils.Logger.Info().Str("project", project.Name).Msg("project and related data deleted")
	c.JSON(http.StatusOK, gin.H{"message": "project and all related data deleted successfully"})
}

// PostSiteUpdate records an office-side progress note, optionally with a
// photo.
func PostSiteUpdate(c *gin.Context) {
	projectID := c.PostForm("projectId")
	content := c.PostForm("content")

	if projectID == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectId and content are required"})
		return
	}

	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	update := models.SiteUpdate{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Content:     content,
		UpdateTime:  time.Now(),
	}

	if file, err := c.FormFile("file"); err == nil {
		url, err := fileStore.Save(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
			return
		}
		update.PhotoURL1 = url
	}

	if _, err := repository.Collection(repository.SiteUpdatesCollection).InsertOne(ctx, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "update saved successfully"})
}

// AddCity registers a new operating city.
func AddCity(c *gin.Context) {
	var req models.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	citiesCollection := repository.Collection(repository.CitiesCollection)

	count, err := citiesCollection.CountDocuments(ctx, bson.M{"name": req.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check city"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city already exists"})
		return
	}

	city := models.City{
		Name:      req.Name,
		State:     req.State,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	result, err := citiesCollection.InsertOne(ctx, city)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error adding city: " + err.Error()})
		return
	}

	city.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusOK, city)
}

// GetAllCities lists cities for the project form dropdown.
func GetAllCities(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.CitiesCollection).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cities"})
		return
	}

	var cities []models.City
	if err = cursor.All(ctx, &cities); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode cities"})
		return
	}

	c.JSON(http.StatusOK, cities)
}

// GetAllSupervisors lists supervisor accounts with their running project
// counts for the assignment dropdown.
func GetAllSupervisors(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := repository.Collection(repository.UsersCollection).
		Find(ctx, bson.M{"role": models.UserRoleSUPERVISOR})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list supervisors"})
		return
	}

	var supervisors []models.User
	if err = cursor.All(ctx, &supervisors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decode supervisors"})
		return
	}

	projectCollection := repository.Collection(repository.ProjectsCollection)
	for i := range supervisors {
		count, err := projectCollection.CountDocuments(ctx, bson.M{
			"supervisorId": supervisors[i].ID,
			"status":       models.StatusRunning,
		})
		if err == nil {
			supervisors[i].ProjectCount = count
		}
	}

	c.JSON(http.StatusOK, supervisors)
}

// GetProjectShareLink mints the opaque token for the public client view.
func GetProjectShareLink(c *gin.Context) {
	projectID := c.Param("id")

	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id format"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := repository.Collection(repository.ProjectsCollection).
		CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check project"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	token := utils.EncodeShareToken(projectID)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"path":  "/public/view/" + token,
	})
}

// findCity resolves a city by hex id.
func findCity(ctx context.Context, id string) (*models.City, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.CreateBadRequestError("invalid city id format")
	}

	var city models.City
	err = repository.Collection(repository.CitiesCollection).
		FindOne(ctx, bson.M{"_id": objID}).
		Decode(&city)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("city")
		}
		return nil, err
	}
	return &city, nil
}

// findSupervisor resolves a supervisor account by hex id.
func findSupervisor(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.CreateBadRequestError("invalid supervisor id format")
	}

	var user models.User
	err = repository.Collection(repository.UsersCollection).
		FindOne(ctx, bson.M{"_id": objID, "role": models.UserRoleSUPERVISOR}).
		Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.CreateNotFoundError("supervisor")
		}
		return nil, err
	}
	return &user, nil
}

// loadProjectsWithLabourCounts fetches all projects and overlays each
// one's active roster size.
func loadProjectsWithLabourCounts(ctx context.Context) ([]models.Project, error) {
	cursor, err := repository.Collection(repository.ProjectsCollection).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}

	labourCollection := repository.Collection(repository.LabourCollection)
	for i := range projects {
		count, err := labourCollection.CountDocuments(ctx, bson.M{
			"projectId": projects[i].ID,
			"isActive":  true,
		})
		if err == nil {
			projects[i].LabourCount = int(count)
		}
	}

	return projects, nil
}
