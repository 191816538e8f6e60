package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Slug  string `gorm:"uniqueIndex" json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type MenuItem struct {
	gorm.Model
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Featured   bool    `json:"featured"`
	CategoryID uint    `json:"categoryId" binding:"required"`
	ImageUrl   string  `json:"imageUrl"`
}
