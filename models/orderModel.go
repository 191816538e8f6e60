package models

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"          // placed, not yet picked up by delivery
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // handed to the assigned crew member
	OrderStatusDelivered      OrderStatus = "delivered"        // terminal
)

// ParseOrderStatus maps a client-supplied string to a known status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusOutForDelivery):
		return OrderStatusOutForDelivery, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	gorm.Model
	Reference      string         `gorm:"uniqueIndex" json:"reference"`
	UserID         uint           `gorm:"index" json:"userId"`
	DeliveryCrewID *uint          `json:"deliveryCrewId"`
	Status         OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Total          float64        `json:"total"`
	Date           datatypes.Date `json:"date"`
	OrderItems     []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
}

// OrderItem is a frozen copy of a cart line taken at checkout; it is never
// updated afterwards.
type OrderItem struct {
	gorm.Model
	OrderID    uint    `gorm:"index" json:"orderId"`
	MenuItemID uint    `json:"menuItemId"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Price      float64 `json:"price"`
}
