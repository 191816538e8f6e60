package services

import (
	"errors"
	"testing"
)

func TestAddItemSnapshotsPrice(t *testing.T) {
	store := newMemStore()
	store.addMenuItem(5, "Greek Salad", 10.00)
	svc := NewCartService(store)

	line, err := svc.AddItem(1, 5, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if line.UnitPrice != 10.00 || line.Price != 30.00 {
		t.Fatalf("line = unit %.2f price %.2f, want 10.00 / 30.00", line.UnitPrice, line.Price)
	}
	if line.Quantity != 3 || line.MenuItemID != 5 {
		t.Fatalf("unexpected line %+v", line)
	}

	// A later price change must not touch the existing line.
	store.addMenuItem(5, "Greek Salad", 12.50)
	lines, err := svc.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(lines) != 1 || lines[0].UnitPrice != 10.00 {
		t.Fatalf("snapshot lost: %+v", lines)
	}
}

func TestAddItemInvalidQuantity(t *testing.T) {
	store := newMemStore()
	store.addMenuItem(5, "Greek Salad", 10.00)
	svc := NewCartService(store)

	for _, quantity := range []int{0, -1, -50} {
		if _, err := svc.AddItem(1, 5, quantity); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("quantity %d: err = %v, want ErrInvalidInput", quantity, err)
		}
	}

	lines, _ := svc.List(1)
	if len(lines) != 0 {
		t.Fatalf("invalid adds must not persist, got %d lines", len(lines))
	}
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	svc := NewCartService(newMemStore())
	if _, err := svc.AddItem(1, 99, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAddItemDoesNotMergeDuplicates(t *testing.T) {
	store := newMemStore()
	store.addMenuItem(5, "Greek Salad", 10.00)
	svc := NewCartService(store)

	if _, err := svc.AddItem(1, 5, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(1, 5, 2); err != nil {
		t.Fatal(err)
	}

	lines, _ := svc.List(1)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 separate lines", len(lines))
	}
	if lines[0].Quantity != 1 || lines[1].Quantity != 2 {
		t.Fatalf("lines out of insertion order: %+v", lines)
	}
}

func TestListIsScopedToUser(t *testing.T) {
	store := newMemStore()
	store.addMenuItem(5, "Greek Salad", 10.00)
	svc := NewCartService(store)

	if _, err := svc.AddItem(1, 5, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(2, 5, 4); err != nil {
		t.Fatal(err)
	}

	lines, _ := svc.List(1)
	if len(lines) != 1 || lines[0].UserID != 1 {
		t.Fatalf("user 1 sees %+v", lines)
	}
}

func TestRemoveItemOwnership(t *testing.T) {
	store := newMemStore()
	store.addMenuItem(5, "Greek Salad", 10.00)
	svc := NewCartService(store)

	line, err := svc.AddItem(1, 5, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.RemoveItem(2, line.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign delete err = %v, want ErrForbidden", err)
	}
	if err := svc.RemoveItem(1, line.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.RemoveItem(1, line.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}
