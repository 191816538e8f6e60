package services

import "littlelemon-api/models"

// CartService owns the per-user cart ledger. Every operation is scoped to
// the acting user; a user can never see or mutate another user's lines.
type CartService struct {
	store Store
}

func NewCartService(store Store) *CartService {
	return &CartService{store: store}
}

// AddItem appends a new line snapshotting the menu item's current price.
// Duplicate lines for the same menu item are allowed and not merged.
func (s *CartService) AddItem(userID, menuItemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidInput
	}

	item, err := s.store.MenuItem(menuItemID)
	if err != nil {
		return nil, err
	}

	line := models.CartItem{
		UserID:     userID,
		MenuItemID: item.ID,
		Title:      item.Title,
		Quantity:   quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * float64(quantity),
	}
	if err := s.store.CreateCartLine(&line); err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	return s.store.CartLines(userID)
}

// RemoveItem deletes a single line. The caller must own it.
func (s *CartService) RemoveItem(userID, lineID uint) error {
	line, err := s.store.CartLine(lineID)
	if err != nil {
		return err
	}
	if line.UserID != userID {
		return ErrForbidden
	}
	return s.store.DeleteCartLine(lineID)
}
