package models

import "gorm.io/gorm"

// CartItem is one pending line in a customer's cart. UnitPrice is a snapshot
// of the menu item price at add time; a later manager edit of the menu item
// does not touch existing lines.
type CartItem struct {
	gorm.Model
	UserID     uint    `gorm:"index" json:"userId"`
	MenuItemID uint    `json:"menuItemId"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Price      float64 `json:"price"`
}
