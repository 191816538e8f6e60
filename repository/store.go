// Package repository is the gorm-backed implementation of the stores the
// services consume.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"littlelemon-api/models"
	"littlelemon-api/services"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Transaction(fn func(tx services.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}

// --- menu ---

func (s *Store) MenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// --- cart ---

func (s *Store) CreateCartLine(line *models.CartItem) error {
	return s.db.Create(line).Error
}

func (s *Store) CartLines(userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := s.db.Where("user_id = ?", userID).Order("id").Find(&lines).Error
	return lines, err
}

func (s *Store) CartLinesForUpdate(userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id").
		Find(&lines).Error
	return lines, err
}

func (s *Store) CartLine(id uint) (*models.CartItem, error) {
	var line models.CartItem
	if err := s.db.First(&line, id).Error; err != nil {
		return nil, translate(err)
	}
	return &line, nil
}

func (s *Store) DeleteCartLine(id uint) error {
	result := s.db.Delete(&models.CartItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Store) ClearCart(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// --- users and roles ---

func (s *Store) User(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Roles").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) UsersInRole(role string) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name = ?", role).
		Find(&users).Error
	return users, err
}

func (s *Store) UserRoles(userID uint) ([]string, error) {
	user, err := s.User(userID)
	if err != nil {
		return nil, err
	}
	return user.RoleNames(), nil
}

func (s *Store) role(name string) (*models.Role, error) {
	var role models.Role
	if err := s.db.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, translate(err)
	}
	return &role, nil
}

func (s *Store) AddUserRole(userID uint, roleName string) error {
	role, err := s.role(roleName)
	if err != nil {
		return err
	}
	user := models.User{Model: gorm.Model{ID: userID}}
	return s.db.Model(&user).Association("Roles").Append(role)
}

func (s *Store) RemoveUserRole(userID uint, roleName string) error {
	role, err := s.role(roleName)
	if err != nil {
		return err
	}
	user := models.User{Model: gorm.Model{ID: userID}}
	return s.db.Model(&user).Association("Roles").Delete(role)
}

// --- orders ---

func (s *Store) CreateOrder(order *models.Order) error {
	return s.db.Create(order).Error
}

func (s *Store) Order(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("OrderItems").First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *Store) Orders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("OrderItems").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *Store) OrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("OrderItems").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *Store) OrdersByCrew(crewID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("OrderItems").Where("delivery_crew_id = ?", crewID).
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (s *Store) SaveOrder(order *models.Order) error {
	return s.db.Omit("OrderItems").Save(order).Error
}

func (s *Store) DeleteOrder(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// No FK cascade at the SQL layer; remove the items explicitly.
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete order %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return services.ErrNotFound
		}
		return nil
	})
}

func (s *Store) CountUndelivered() (int64, error) {
	var count int64
	err := s.db.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusDelivered).
		Count(&count).Error
	return count, err
}
