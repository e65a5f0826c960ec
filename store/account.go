package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/civic-guardian/civic-api/schema"
)

var (
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// CreateAccount registers a citizen or administrator account.
func (s *CivicStore) CreateAccount(name, role string) (*schema.Account, error) {
	if role == "" {
		role = schema.RoleCitizen
	}

	a := schema.Account{
		ID:   uuid.New().String(),
		Name: name,
		Role: role,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account with the given identifier.
func (s *CivicStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
