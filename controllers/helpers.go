package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"littlelemon-api/initializers"
	"littlelemon-api/repository"
	"littlelemon-api/services"
)

func store() *repository.Store {
	return repository.New(initializers.DB)
}

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// handleServiceError maps the services' typed failures onto HTTP codes.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrInvalidInput):
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, services.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, "cart is empty")
	default:
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}
