package services

import (
	"errors"
	"sort"
	"sync"

	"littlelemon-api/models"
)

// memStore is an in-memory Store used by the service tests. Transaction
// takes a snapshot up front and restores it on error, mirroring the rollback
// behavior of the real database.
type memStore struct {
	mu sync.Mutex

	menuItems map[uint]models.MenuItem
	cartLines map[uint]models.CartItem
	users     map[uint]models.User
	roles     map[uint]map[string]bool
	orders    map[uint]models.Order

	lineSeq  uint
	orderSeq uint

	failCreateOrder bool
}

func newMemStore() *memStore {
	return &memStore{
		menuItems: make(map[uint]models.MenuItem),
		cartLines: make(map[uint]models.CartItem),
		users:     make(map[uint]models.User),
		roles:     make(map[uint]map[string]bool),
		orders:    make(map[uint]models.Order),
	}
}

func (m *memStore) addMenuItem(id uint, title string, price float64) {
	item := models.MenuItem{Title: title, Price: price}
	item.ID = id
	m.menuItems[id] = item
}

func (m *memStore) addUser(id uint, username string, roleNames ...string) {
	user := models.User{Username: username}
	user.ID = id
	m.users[id] = user
	set := make(map[string]bool)
	for _, name := range roleNames {
		set[name] = true
	}
	m.roles[id] = set
}

func (m *memStore) snapshot() *memStore {
	clone := newMemStore()
	for k, v := range m.menuItems {
		clone.menuItems[k] = v
	}
	for k, v := range m.cartLines {
		clone.cartLines[k] = v
	}
	for k, v := range m.users {
		clone.users[k] = v
	}
	for k, v := range m.roles {
		set := make(map[string]bool, len(v))
		for name := range v {
			set[name] = true
		}
		clone.roles[k] = set
	}
	for k, v := range m.orders {
		items := make([]models.OrderItem, len(v.OrderItems))
		copy(items, v.OrderItems)
		v.OrderItems = items
		clone.orders[k] = v
	}
	clone.lineSeq = m.lineSeq
	clone.orderSeq = m.orderSeq
	return clone
}

func (m *memStore) restore(from *memStore) {
	m.menuItems = from.menuItems
	m.cartLines = from.cartLines
	m.users = from.users
	m.roles = from.roles
	m.orders = from.orders
	m.lineSeq = from.lineSeq
	m.orderSeq = from.orderSeq
}

func (m *memStore) Transaction(fn func(tx Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(saved)
		return err
	}
	return nil
}

// --- menu ---

func (m *memStore) MenuItem(id uint) (*models.MenuItem, error) {
	item, ok := m.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// --- cart ---

func (m *memStore) CreateCartLine(line *models.CartItem) error {
	m.lineSeq++
	line.ID = m.lineSeq
	m.cartLines[line.ID] = *line
	return nil
}

func (m *memStore) CartLines(userID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	for _, line := range m.cartLines {
		if line.UserID == userID {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}

func (m *memStore) CartLinesForUpdate(userID uint) ([]models.CartItem, error) {
	return m.CartLines(userID)
}

func (m *memStore) CartLine(id uint) (*models.CartItem, error) {
	line, ok := m.cartLines[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &line, nil
}

func (m *memStore) DeleteCartLine(id uint) error {
	if _, ok := m.cartLines[id]; !ok {
		return ErrNotFound
	}
	delete(m.cartLines, id)
	return nil
}

func (m *memStore) ClearCart(userID uint) error {
	for id, line := range m.cartLines {
		if line.UserID == userID {
			delete(m.cartLines, id)
		}
	}
	return nil
}

// --- users and roles ---

func (m *memStore) User(id uint) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *memStore) UserByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) UsersInRole(role string) ([]models.User, error) {
	var users []models.User
	for id, set := range m.roles {
		if set[role] {
			users = append(users, m.users[id])
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memStore) UserRoles(userID uint) ([]string, error) {
	set, ok := m.roles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	var names []string
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memStore) AddUserRole(userID uint, role string) error {
	set, ok := m.roles[userID]
	if !ok {
		return ErrNotFound
	}
	set[role] = true
	return nil
}

func (m *memStore) RemoveUserRole(userID uint, role string) error {
	set, ok := m.roles[userID]
	if !ok {
		return ErrNotFound
	}
	delete(set, role)
	return nil
}

// --- orders ---

func (m *memStore) CreateOrder(order *models.Order) error {
	if m.failCreateOrder {
		return errors.New("simulated insert failure")
	}
	m.orderSeq++
	order.ID = m.orderSeq
	for i := range order.OrderItems {
		order.OrderItems[i].OrderID = order.ID
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memStore) Order(id uint) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	items := make([]models.OrderItem, len(order.OrderItems))
	copy(items, order.OrderItems)
	order.OrderItems = items
	return &order, nil
}

func (m *memStore) Orders() ([]models.Order, error) {
	var orders []models.Order
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *memStore) OrdersByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *memStore) OrdersByCrew(crewID uint) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range m.orders {
		if order.DeliveryCrewID != nil && *order.DeliveryCrewID == crewID {
			orders = append(orders, order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (m *memStore) SaveOrder(order *models.Order) error {
	if _, ok := m.orders[order.ID]; !ok {
		return ErrNotFound
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memStore) DeleteOrder(id uint) error {
	if _, ok := m.orders[id]; !ok {
		return ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *memStore) CountUndelivered() (int64, error) {
	var count int64
	for _, order := range m.orders {
		if order.Status != models.OrderStatusDelivered {
			count++
		}
	}
	return count, nil
}
