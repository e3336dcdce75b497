package routes

import (
	"net/http"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/repository"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API under /api plus the static photo
// directory.
func RegisterRoutes(r *gin.Engine, uploadDir string) {
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")

	api.GET("/health", healthCheck)
	api.GET("/db-status", dbStatus)

	registerAuthRoutes(api)
	registerAdminRoutes(api)
	registerMeasurementRoutes(api)
	registerLabourRoutes(api)
	registerSupervisorRoutes(api)
	registerPublicRoutes(api)
	registerDashboardRoutes(api)
	registerUserRoutes(api)
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func dbStatus(c *gin.Context) {
	status, err := repository.GetDatabaseStatus()
	if err != nil {
		utils.ErrorResponse(c, "failed to read database status", http.StatusInternalServerError)
		return
	}
	utils.SuccessResponse(c, status, "")
}
