package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"
	"github.com/AzharuddinMalik/MAD-ERP/middleware"
	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleADMIN))
	{
		admin.GET("/projects", controllers.GetAllProjects)
		admin.GET("/projects/:id", controllers.GetProjectByID)
		admin.POST("/create-project", controllers.CreateProject)
		admin.PUT("/projects/:id", controllers.UpdateProject)
		admin.DELETE("/projects/:id", controllers.DeleteProject)
		admin.POST("/update-project", controllers.QuickUpdateProject)
		admin.GET("/projects/:id/share-link", controllers.GetProjectShareLink)

		admin.POST("/post-update", controllers.PostSiteUpdate)

		admin.GET("/cities", controllers.GetAllCities)
		admin.POST("/cities", controllers.AddCity)

		admin.GET("/supervisors", controllers.GetAllSupervisors)

		admin.GET("/dashboard", controllers.GetDashboardData)
	}
}
