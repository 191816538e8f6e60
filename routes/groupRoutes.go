package routes

import (
	"github.com/gin-gonic/gin"

	"littlelemon-api/controllers"
	"littlelemon-api/middlewares"
)

func GroupRoutes(server *gin.Engine) {
	groups := server.Group("/groups", middlewares.RequireAuth(), middlewares.RequireManager())
	{
		groups.GET("/manager/users", controllers.GetManagers)
		groups.POST("/manager/users", controllers.AddManager)
		groups.DELETE("/manager/users/:id", controllers.RemoveManager)
		groups.GET("/delivery-crew/users", controllers.GetDeliveryCrew)
		groups.POST("/delivery-crew/users", controllers.AddDeliveryCrew)
		groups.DELETE("/delivery-crew/users/:id", controllers.RemoveDeliveryCrew)
	}
}
