package schema

import (
	"time"
)

const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

// Account is a registered citizen or administrator. Accounts live in the
// relational store; civic data lives in mongo.
type Account struct {
	ID        string    `json:"id" gorm:"primary_key"`
	Name      string    `json:"name" gorm:"unique_index;not null"`
	Role      string    `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
