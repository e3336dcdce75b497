package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"
	"github.com/AzharuddinMalik/MAD-ERP/middleware"
	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/gin-gonic/gin"
)

func registerSupervisorRoutes(api *gin.RouterGroup) {
	supervisor := api.Group("/supervisor")
	supervisor.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleSUPERVISOR, models.UserRoleADMIN))
	{
		supervisor.GET("/my-projects", controllers.GetMyProjects)
		supervisor.POST("/daily-update", controllers.PostDailyUpdate)
		supervisor.GET("/projects/:id/updates", controllers.GetProjectUpdates)
	}
}
