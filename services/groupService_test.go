package services

import (
	"errors"
	"testing"

	"littlelemon-api/models"
)

func TestGroupAddAndRemove(t *testing.T) {
	store := newMemStore()
	store.addUser(1, "alice", models.RoleCustomer)
	svc := NewGroupService(store)

	user, err := svc.Add("alice", models.RoleManager)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("returned user %+v", user)
	}

	members, err := svc.Members(models.RoleManager)
	if err != nil || len(members) != 1 {
		t.Fatalf("members = %+v (%v), want alice", members, err)
	}

	if err := svc.Remove(1, models.RoleManager); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	members, _ = svc.Members(models.RoleManager)
	if len(members) != 0 {
		t.Fatalf("members after remove = %+v", members)
	}
	// Customer membership is untouched.
	roles, _ := store.UserRoles(1)
	if len(roles) != 1 || roles[0] != models.RoleCustomer {
		t.Fatalf("roles = %v", roles)
	}
}

func TestGroupAddUnknownUser(t *testing.T) {
	svc := NewGroupService(newMemStore())
	if _, err := svc.Add("ghost", models.RoleManager); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGroupRemoveUnknownUser(t *testing.T) {
	svc := NewGroupService(newMemStore())
	if err := svc.Remove(99, models.RoleDeliveryCrew); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
