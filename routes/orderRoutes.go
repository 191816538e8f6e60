package routes

import (
	"github.com/gin-gonic/gin"

	"littlelemon-api/controllers"
	"littlelemon-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("", controllers.GetOrders)
		orders.POST("", controllers.CreateOrder)
		orders.GET("/undelivered-count", controllers.GetUndeliveredOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.PUT("/:id", controllers.UpdateOrder)
		orders.PATCH("/:id", controllers.UpdateOrderStatus)
		orders.DELETE("/:id", controllers.DeleteOrder)
	}
}
