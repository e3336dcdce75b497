package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"
	"github.com/AzharuddinMalik/MAD-ERP/middleware"
	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/gin-gonic/gin"
)

func registerMeasurementRoutes(api *gin.RouterGroup) {
	measurements := api.Group("/measurements")
	measurements.Use(middleware.AuthMiddleware())
	{
		measurements.GET("/project/:id",
			middleware.PermissionMiddleware("measurements", "read"),
			controllers.GetProjectMeasurements)
		measurements.GET("/boq/:id/history",
			middleware.PermissionMiddleware("measurements", "read"),
			controllers.GetMeasurementHistory)
		measurements.POST("/record",
			middleware.PermissionMiddleware("measurements", "create"),
			controllers.RecordMeasurement)

		// Scope definitions stay with the office
		boq := measurements.Group("/boq", middleware.RequireRoles(models.UserRoleADMIN))
		{
			boq.POST("", controllers.CreateBOQItem)
			boq.PUT("/:id", controllers.UpdateBOQItem)
			boq.DELETE("/:id", controllers.DeleteBOQItem)
		}

		measurements.GET("/billing/:id",
			middleware.RequireRoles(models.UserRoleADMIN),
			controllers.GetProjectBilling)
	}
}
