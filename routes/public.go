package routes

import (
	"github.com/AzharuddinMalik/MAD-ERP/controllers"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	public := api.Group("/public")
	{
		public.GET("/project/:id", controllers.GetPublicProject)
		public.GET("/view/:token", controllers.GetSharedProject)
	}
}
