package routes

import (
	"github.com/gin-gonic/gin"

	"littlelemon-api/controllers"
	"littlelemon-api/middlewares"
)

func MenuRoutes(server *gin.Engine) {
	menu := server.Group("/", middlewares.RequireAuth())
	{
		menu.GET("/categories", controllers.GetCategories)
		menu.POST("/categories", controllers.CreateCategory)
		menu.GET("/menu-items", controllers.GetMenuItems)
		menu.POST("/menu-items", controllers.CreateMenuItem)
		menu.GET("/menu-items/:id", controllers.GetMenuItem)
		menu.PUT("/menu-items/:id", controllers.UpdateMenuItem)
		menu.DELETE("/menu-items/:id", controllers.DeleteMenuItem)
		menu.POST("/menu-items/:id/image", controllers.UploadMenuItemImage)
	}
}
