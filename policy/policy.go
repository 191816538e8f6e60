// Package policy holds the authorization rules for the API. It is the single
// source of truth for which group may perform which action; handlers never
// inspect group names directly.
package policy

import (
	"errors"

	"littlelemon-api/models"
)

var ErrForbidden = errors.New("forbidden")

// RoleSet is the full set of groups a principal belongs to. Principals may
// belong to several groups at once; a rule matching any of them grants
// access.
type RoleSet map[string]bool

func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func (s RoleSet) Has(role string) bool { return s[role] }

func (s RoleSet) IsManager() bool      { return s.Has(models.RoleManager) }
func (s RoleSet) IsDeliveryCrew() bool { return s.Has(models.RoleDeliveryCrew) }

// IsCustomer is true for explicit Customer membership and for principals with
// no group at all: an authenticated user without a group is an ordinary
// customer as far as carts and checkout are concerned.
func (s RoleSet) IsCustomer() bool { return s.Has(models.RoleCustomer) || len(s) == 0 }

type Action string

const (
	ActionMenuRead     Action = "menu:read"
	ActionMenuWrite    Action = "menu:write"
	ActionCartUse      Action = "cart:use"
	ActionOrderCreate  Action = "order:create"
	ActionOrderList    Action = "order:list"
	ActionOrderManage  Action = "order:manage"
	ActionOrderDeliver Action = "order:deliver"
	ActionGroupManage  Action = "group:manage"
)

// customerActions are also granted to principals with no explicit group.
var customerActions = map[Action]bool{
	ActionMenuRead:    true,
	ActionCartUse:     true,
	ActionOrderCreate: true,
	ActionOrderList:   true,
}

var rules = map[Action][]string{
	ActionMenuRead:     {models.RoleCustomer, models.RoleManager, models.RoleDeliveryCrew},
	ActionMenuWrite:    {models.RoleManager},
	ActionCartUse:      {models.RoleCustomer},
	ActionOrderCreate:  {models.RoleCustomer},
	ActionOrderList:    {models.RoleCustomer, models.RoleManager, models.RoleDeliveryCrew},
	ActionOrderManage:  {models.RoleManager},
	ActionOrderDeliver: {models.RoleDeliveryCrew},
	ActionGroupManage:  {models.RoleManager},
}

// Authorize reports whether any of the principal's roles allows the action.
// Unknown actions deny.
func Authorize(roles RoleSet, action Action) error {
	allowed, known := rules[action]
	if !known {
		return ErrForbidden
	}
	if len(roles) == 0 && customerActions[action] {
		return nil
	}
	for _, role := range allowed {
		if roles.Has(role) {
			return nil
		}
	}
	return ErrForbidden
}

// OrderScope is the slice of the order table a principal may list.
type OrderScope int

const (
	ScopeOwn OrderScope = iota // orders the principal placed
	ScopeAssigned              // orders assigned to the principal for delivery
	ScopeAll                   // every order
)

// ListScope resolves overlapping memberships to the widest visibility the
// principal qualifies for: Manager over Delivery Crew over Customer.
func ListScope(roles RoleSet) OrderScope {
	switch {
	case roles.IsManager():
		return ScopeAll
	case roles.IsDeliveryCrew():
		return ScopeAssigned
	default:
		return ScopeOwn
	}
}
