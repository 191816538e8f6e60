package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"littlelemon-api/middlewares"
	"littlelemon-api/policy"
	"littlelemon-api/services"
)

type cartLineInput struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// AddCartItem appends a line to the caller's own cart.
func AddCartItem(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionCartUse); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	var input cartLineInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	svc := services.NewCartService(store())
	line, err := svc.AddItem(middlewares.UserID(ctx), input.MenuItemID, input.Quantity)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": line.Title + " added to cart",
		"line":    line,
	})
}

// GetCart lists the caller's cart lines in insertion order.
func GetCart(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionCartUse); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	svc := services.NewCartService(store())
	lines, err := svc.List(middlewares.UserID(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": lines})
}

// RemoveCartItem deletes one of the caller's cart lines.
func RemoveCartItem(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionCartUse); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	lineId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse cart line id")
		return
	}

	svc := services.NewCartService(store())
	if err := svc.RemoveItem(middlewares.UserID(ctx), uint(lineId)); err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item deleted"})
}
