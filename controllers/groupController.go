package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"littlelemon-api/models"
	"littlelemon-api/services"
)

type groupMemberBody struct {
	Username string `json:"username" binding:"required"`
}

func groupMembers(ctx *gin.Context, role string) {
	svc := services.NewGroupService(store())
	users, err := svc.Members(role)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

func addGroupMember(ctx *gin.Context, role string, successStatus int) {
	var body groupMemberBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	svc := services.NewGroupService(store())
	user, err := svc.Add(body.Username, role)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, successStatus, gin.H{"user": user})
}

func removeGroupMember(ctx *gin.Context, role string) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse user id")
		return
	}

	svc := services.NewGroupService(store())
	if err := svc.Remove(uint(userId), role); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User removed from group"})
}

func GetManagers(ctx *gin.Context) {
	groupMembers(ctx, models.RoleManager)
}

func AddManager(ctx *gin.Context) {
	addGroupMember(ctx, models.RoleManager, http.StatusOK)
}

func RemoveManager(ctx *gin.Context) {
	removeGroupMember(ctx, models.RoleManager)
}

func GetDeliveryCrew(ctx *gin.Context) {
	groupMembers(ctx, models.RoleDeliveryCrew)
}

func AddDeliveryCrew(ctx *gin.Context) {
	addGroupMember(ctx, models.RoleDeliveryCrew, http.StatusCreated)
}

func RemoveDeliveryCrew(ctx *gin.Context) {
	removeGroupMember(ctx, models.RoleDeliveryCrew)
}
