package services

import "littlelemon-api/models"

// GroupService manages Manager and Delivery Crew membership.
type GroupService struct {
	store Store
}

func NewGroupService(store Store) *GroupService {
	return &GroupService{store: store}
}

func (s *GroupService) Members(role string) ([]models.User, error) {
	return s.store.UsersInRole(role)
}

// Add puts the named user into the group.
func (s *GroupService) Add(username, role string) (*models.User, error) {
	var member *models.User
	err := s.store.Transaction(func(tx Store) error {
		user, err := tx.UserByUsername(username)
		if err != nil {
			return err
		}
		if err := tx.AddUserRole(user.ID, role); err != nil {
			return err
		}
		member = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// Remove takes the user out of the group.
func (s *GroupService) Remove(userID uint, role string) error {
	return s.store.Transaction(func(tx Store) error {
		if _, err := tx.User(userID); err != nil {
			return err
		}
		return tx.RemoveUserRole(userID, role)
	})
}
