package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"littlelemon-api/policy"
)

// RequireManager must run after RequireAuth.
func RequireManager() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := policy.Authorize(Roles(ctx), policy.ActionGroupManage); err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Manager access required"})
			return
		}
		ctx.Next()
	}
}
