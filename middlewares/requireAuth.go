package middlewares

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"littlelemon-api/initializers"
	"littlelemon-api/policy"
	"littlelemon-api/repository"
)

const (
	CtxUserID = "userID"
	CtxRoles  = "roles"
)

// RequireAuth validates the Bearer token and loads the caller's group
// memberships into the request context. Group membership is read from the
// database on every request, so a group change takes effect immediately
// rather than at the next login.
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		rawID, ok := claims["user_id"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			return
		}
		userID := uint(rawID)

		roleNames, err := repository.New(initializers.DB).UserRoles(userID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unknown user"})
			return
		}

		ctx.Set(CtxUserID, userID)
		ctx.Set(CtxRoles, policy.NewRoleSet(roleNames...))
		ctx.Next()
	}
}

// UserID returns the authenticated caller's id from the context.
func UserID(ctx *gin.Context) uint {
	return ctx.MustGet(CtxUserID).(uint)
}

// Roles returns the authenticated caller's group set from the context.
func Roles(ctx *gin.Context) policy.RoleSet {
	return ctx.MustGet(CtxRoles).(policy.RoleSet)
}
