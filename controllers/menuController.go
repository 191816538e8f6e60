package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"littlelemon-api/initializers"
	"littlelemon-api/middlewares"
	"littlelemon-api/models"
	"littlelemon-api/policy"
)

// Category handlers

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func CreateCategory(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionMenuWrite); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// Menu item handlers

func GetMenuItems(ctx *gin.Context) {
	var items []models.MenuItem

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset := (page - 1) * limit

	query := initializers.DB.Model(&models.MenuItem{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}

	sortOrder := ctx.DefaultQuery("sort", "asc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}
	query = query.Order("title " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&items)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", result.Error)
		return
	}

	var count int64
	initializers.DB.Model(&models.MenuItem{}).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"menuItems": items,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetMenuItem(ctx *gin.Context) {
	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	result := initializers.DB.First(&item, itemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func CreateMenuItem(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionMenuWrite); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, item.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		}
		return
	}

	if err := initializers.DB.Create(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

func UpdateMenuItem(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionMenuWrite); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	var input models.MenuItem
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item.Title = input.Title
	item.Price = input.Price
	item.Featured = input.Featured
	item.CategoryID = input.CategoryID

	if err := initializers.DB.Save(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

func DeleteMenuItem(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionMenuWrite); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	result := initializers.DB.Delete(&models.MenuItem{}, itemId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu item deleted successfully."})
}

// getAWSUploader returns a configured S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadMenuItemImage stores an image for the menu item on S3 and saves the
// resulting URL on the item.
func UploadMenuItemImage(ctx *gin.Context) {
	if err := policy.Authorize(middlewares.Roles(ctx), policy.ActionMenuWrite); err != nil {
		sendErrorResponse(ctx, http.StatusForbidden, "forbidden")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var item models.MenuItem
	if err := initializers.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer f.Close()

	uniqueFilename := fmt.Sprintf("%d-%s-%s", itemId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	item.ImageUrl = result.Location
	if err := initializers.DB.Save(&item).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image URL", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded",
		"url":     result.Location,
	})
}
