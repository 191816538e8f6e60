package services

import "littlelemon-api/models"

// Store is what the services need from persistence. The gorm implementation
// lives in the repository package; tests use an in-memory fake.
type Store interface {
	MenuStore
	CartStore
	UserStore
	OrderStore

	// Transaction runs fn against a store bound to one database
	// transaction; any error rolls the whole transaction back.
	Transaction(fn func(tx Store) error) error
}

type MenuStore interface {
	MenuItem(id uint) (*models.MenuItem, error)
}

type CartStore interface {
	CreateCartLine(line *models.CartItem) error
	CartLines(userID uint) ([]models.CartItem, error)
	// CartLinesForUpdate locks the lines for the duration of the enclosing
	// transaction so a concurrent add cannot race the checkout.
	CartLinesForUpdate(userID uint) ([]models.CartItem, error)
	CartLine(id uint) (*models.CartItem, error)
	DeleteCartLine(id uint) error
	ClearCart(userID uint) error
}

type UserStore interface {
	User(id uint) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
	UsersInRole(role string) ([]models.User, error)
	UserRoles(userID uint) ([]string, error)
	AddUserRole(userID uint, role string) error
	RemoveUserRole(userID uint, role string) error
}

type OrderStore interface {
	CreateOrder(order *models.Order) error
	Order(id uint) (*models.Order, error)
	Orders() ([]models.Order, error)
	OrdersByUser(userID uint) ([]models.Order, error)
	OrdersByCrew(crewID uint) ([]models.Order, error)
	SaveOrder(order *models.Order) error
	DeleteOrder(id uint) error
	CountUndelivered() (int64, error)
}
