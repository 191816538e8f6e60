package routes

import (
	"github.com/gin-gonic/gin"

	"littlelemon-api/controllers"
	"littlelemon-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("/menu-items", controllers.GetCart)
		cart.POST("/menu-items", controllers.AddCartItem)
		cart.DELETE("/menu-items/:id", controllers.RemoveCartItem)
	}
}
