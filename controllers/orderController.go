package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"littlelemon-api/middlewares"
	"littlelemon-api/policy"
	"littlelemon-api/services"
)

type checkoutBody struct {
	DeliveryCrewID *uint  `json:"deliveryCrewId"`
	Date           string `json:"date"`
}

type orderUpdateBody struct {
	DeliveryCrewID *uint  `json:"deliveryCrewId"`
	Status         string `json:"status"`
}

type orderStatusBody struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder converts the caller's cart into an order.
func CreateOrder(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionOrderCreate); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	var body checkoutBody
	if err := ctx.ShouldBindJSON(&body); err != nil && err.Error() != "EOF" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	input := services.CheckoutInput{DeliveryCrewID: body.DeliveryCrewID}
	if body.Date != "" {
		date, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		input.Date = &date
	}

	svc := services.NewOrderService(store())
	order, err := svc.Checkout(middlewares.UserID(ctx), input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrders lists orders visible to the caller: managers see all, delivery
// crew their assignments, customers their own.
func GetOrders(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionOrderList); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	svc := services.NewOrderService(store())
	orders, err := svc.ListFor(middlewares.UserID(ctx), middlewares.Roles(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(orders)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders[start:end],
		"metadata": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetOrder returns one order with its items.
func GetOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	svc := services.NewOrderService(store())
	order, err := svc.Get(uint(orderId), middlewares.UserID(ctx), middlewares.Roles(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrder lets a manager assign a delivery crew member and set the status.
func UpdateOrder(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionOrderManage); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	var body orderUpdateBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	svc := services.NewOrderService(store())
	order, err := svc.ManagerUpdate(uint(orderId), body.DeliveryCrewID, body.Status)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order updated successfully.",
		"order":   order,
	})
}

// UpdateOrderStatus lets the assigned delivery crew member change the status
// and nothing else.
func UpdateOrderStatus(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionOrderDeliver); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id")
		return
	}

	var body orderStatusBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	svc := services.NewOrderService(store())
	order, err := svc.CrewUpdateStatus(uint(orderId), middlewares.UserID(ctx), body.Status)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   order,
	})
}

// DeleteOrder removes an order and its items.
func DeleteOrder(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionOrderManage); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	svc := services.NewOrderService(store())
	if err := svc.Delete(uint(orderId)); err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

// GetUndeliveredOrders reports how many orders are still on the way.
func GetUndeliveredOrders(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionOrderManage); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	svc := services.NewOrderService(store())
	count, err := svc.UndeliveredCount()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
