package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"
	"github.com/AzharuddinMalik/MAD-ERP/middleware"
	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/gin-gonic/gin"
)

func registerDashboardRoutes(api *gin.RouterGroup) {
	dashboard := api.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleADMIN))
	{
		dashboard.GET("/data", controllers.GetDashboardData)
	}
}
