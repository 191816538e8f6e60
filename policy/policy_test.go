package policy

import (
	"testing"

	"littlelemon-api/models"
)

func TestAuthorize(t *testing.T) {
	customer := NewRoleSet(models.RoleCustomer)
	manager := NewRoleSet(models.RoleManager)
	crew := NewRoleSet(models.RoleDeliveryCrew)
	nobody := NewRoleSet()

	cases := []struct {
		name   string
		roles  RoleSet
		action Action
		allow  bool
	}{
		{"customer reads menu", customer, ActionMenuRead, true},
		{"customer cannot edit menu", customer, ActionMenuWrite, false},
		{"manager edits menu", manager, ActionMenuWrite, true},
		{"customer uses cart", customer, ActionCartUse, true},
		{"crew cannot use cart", crew, ActionCartUse, false},
		{"customer checks out", customer, ActionOrderCreate, true},
		{"manager cannot check out without customer role", manager, ActionOrderCreate, false},
		{"crew delivers", crew, ActionOrderDeliver, true},
		{"customer cannot deliver", customer, ActionOrderDeliver, false},
		{"manager manages orders", manager, ActionOrderManage, true},
		{"crew cannot manage orders", crew, ActionOrderManage, false},
		{"manager manages groups", manager, ActionGroupManage, true},
		{"crew cannot manage groups", crew, ActionGroupManage, false},
		{"no group defaults to customer for cart", nobody, ActionCartUse, true},
		{"no group defaults to customer for checkout", nobody, ActionOrderCreate, true},
		{"no group cannot manage groups", nobody, ActionGroupManage, false},
		{"no group cannot deliver", nobody, ActionOrderDeliver, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.roles, tc.action)
			if tc.allow && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allow && err == nil {
				t.Fatal("expected deny, got allow")
			}
		})
	}
}

func TestAuthorizeUnknownActionDenies(t *testing.T) {
	if err := Authorize(NewRoleSet(models.RoleManager), Action("no-such-action")); err == nil {
		t.Fatal("unknown action must deny")
	}
}

func TestAuthorizeMultipleRoles(t *testing.T) {
	// A manager who is also a customer may both manage orders and check out.
	both := NewRoleSet(models.RoleManager, models.RoleCustomer)
	if err := Authorize(both, ActionOrderManage); err != nil {
		t.Fatalf("manage: %v", err)
	}
	if err := Authorize(both, ActionOrderCreate); err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestListScope(t *testing.T) {
	if got := ListScope(NewRoleSet(models.RoleManager, models.RoleDeliveryCrew)); got != ScopeAll {
		t.Fatalf("manager scope = %v, want ScopeAll", got)
	}
	if got := ListScope(NewRoleSet(models.RoleDeliveryCrew, models.RoleCustomer)); got != ScopeAssigned {
		t.Fatalf("crew scope = %v, want ScopeAssigned", got)
	}
	if got := ListScope(NewRoleSet(models.RoleCustomer)); got != ScopeOwn {
		t.Fatalf("customer scope = %v, want ScopeOwn", got)
	}
	if got := ListScope(NewRoleSet()); got != ScopeOwn {
		t.Fatalf("empty scope = %v, want ScopeOwn", got)
	}
}
