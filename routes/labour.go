package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"
	"github.com/AzharuddinMalik/MAD-ERP/middleware"

	"github.com/gin-gonic/gin"
)

func registerLabourRoutes(api *gin.RouterGroup) {
	labour := api.Group("/labour")
	labour.Use(middleware.AuthMiddleware())
	{
		labour.GET("/project/:id",
			middleware.PermissionMiddleware("labour", "read"),
			controllers.GetProjectLabour)
		labour.POST("/add",
			middleware.PermissionMiddleware("labour", "create"),
			controllers.AddLabour)
		labour.PUT("/:id",
			middleware.PermissionMiddleware("labour", "update"),
			controllers.UpdateLabour)
		labour.DELETE("/:id",
			middleware.PermissionMiddleware("labour", "delete"),
			controllers.DeleteLabour)

		labour.POST("/attendance",
			middleware.PermissionMiddleware("labour", "create"),
			controllers.MarkAttendance)
		labour.GET("/attendance/:id",
			middleware.PermissionMiddleware("labour", "read"),
			controllers.GetProjectAttendance)
	}
}
