package routes

import (
	"github.com/gin-gonic/gin"

	"littlelemon-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
