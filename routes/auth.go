package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}
}
