package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"littlelemon-api/models"
	"littlelemon-api/policy"
)

// OrderService materializes carts into orders and governs who may see and
// change an order afterwards.
type OrderService struct {
	store Store
}

func NewOrderService(store Store) *OrderService {
	return &OrderService{store: store}
}

// CheckoutInput carries the optional fields a customer may supply at
// checkout. The total is never taken from the client.
type CheckoutInput struct {
	DeliveryCrewID *uint
	Date           *time.Time
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout converts every cart line of the acting user into one order plus
// its frozen order items and clears the cart, all in a single transaction.
// The cart lines are locked for the duration so a concurrent add cannot be
// half-consumed.
func (s *OrderService) Checkout(userID uint, input CheckoutInput) (*models.Order, error) {
	var created *models.Order
	err := s.store.Transaction(func(tx Store) error {
		lines, err := tx.CartLinesForUpdate(userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		if input.DeliveryCrewID != nil {
			if _, err := tx.User(*input.DeliveryCrewID); err != nil {
				return err
			}
		}

		var total float64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			total += line.Price
			items = append(items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Title:      line.Title,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			})
		}

		date := time.Now()
		if input.Date != nil {
			date = *input.Date
		}

		order := models.Order{
			Reference:      newOrderRef(),
			UserID:         userID,
			DeliveryCrewID: input.DeliveryCrewID,
			Status:         models.OrderStatusPending,
			Total:          total,
			Date:           datatypes.Date(date),
			OrderItems:     items,
		}
		if err := tx.CreateOrder(&order); err != nil {
			return err
		}
		if err := tx.ClearCart(userID); err != nil {
			return err
		}
		created = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns one order with its items. Existence is checked before any role
// logic; after that only the owning customer, the assigned crew member, or a
// manager may view it.
func (s *OrderService) Get(id, callerID uint, roles policy.RoleSet) (*models.Order, error) {
	order, err := s.store.Order(id)
	if err != nil {
		return nil, err
	}
	switch {
	case order.UserID == callerID:
	case roles.IsManager():
	case order.DeliveryCrewID != nil && *order.DeliveryCrewID == callerID && roles.IsDeliveryCrew():
	default:
		return nil, ErrForbidden
	}
	return order, nil
}

// ListFor returns the orders the principal may see: managers see all,
// delivery crew their assigned orders, customers their own.
func (s *OrderService) ListFor(callerID uint, roles policy.RoleSet) ([]models.Order, error) {
	switch policy.ListScope(roles) {
	case policy.ScopeAll:
		return s.store.Orders()
	case policy.ScopeAssigned:
		return s.store.OrdersByCrew(callerID)
	default:
		return s.store.OrdersByUser(callerID)
	}
}

// ManagerUpdate assigns a delivery crew member and/or sets the status. The
// target crew member must exist; no further transition validation is done.
func (s *OrderService) ManagerUpdate(id uint, crewID *uint, status string) (*models.Order, error) {
	var updated *models.Order
	err := s.store.Transaction(func(tx Store) error {
		order, err := tx.Order(id)
		if err != nil {
			return err
		}
		if crewID != nil {
			if _, err := tx.User(*crewID); err != nil {
				return err
			}
			order.DeliveryCrewID = crewID
		}
		if status != "" {
			parsed, err := models.ParseOrderStatus(status)
			if err != nil {
				return ErrInvalidInput
			}
			order.Status = parsed
		}
		if err := tx.SaveOrder(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CrewUpdateStatus lets the assigned crew member advance the status and
// nothing else.
func (s *OrderService) CrewUpdateStatus(id, callerID uint, status string) (*models.Order, error) {
	order, err := s.store.Order(id)
	if err != nil {
		return nil, err
	}
	if order.DeliveryCrewID == nil || *order.DeliveryCrewID != callerID {
		return nil, ErrForbidden
	}
	parsed, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, ErrInvalidInput
	}
	order.Status = parsed
	if err := s.store.SaveOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes an order and, by cascade, its items.
func (s *OrderService) Delete(id uint) error {
	return s.store.DeleteOrder(id)
}

func (s *OrderService) UndeliveredCount() (int64, error) {
	return s.store.CountUndelivered()
}
