package models

import "gorm.io/gorm"

// Role names used throughout the API. A user may belong to any number of
// roles; a user with none is treated as a plain customer.
const (
	RoleCustomer     = "Customer"
	RoleManager      = "Manager"
	RoleDeliveryCrew = "Delivery Crew"
)

type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

type User struct {
	gorm.Model
	Fullname               string `json:"fullname"`
	Username               string `gorm:"uniqueIndex" json:"username"`
	Email                  string `gorm:"uniqueIndex" json:"email"`
	Phone                  string `json:"phone"`
	Password               string `json:"-"`
	AccountActivated       bool   `json:"-"`
	AccountActivationToken string `json:"-"`
	PasswordResetToken     string `json:"-"`
	Roles                  []Role `gorm:"many2many:user_roles" json:"roles"`
}

type LoginData struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RoleNames returns the names of the groups the user belongs to.
func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
