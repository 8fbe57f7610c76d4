package model

import (
	"time"

	"github.com/google/uuid"
)

// Role controls what a user can do. Moderators manage community content;
// admins manage everything.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User account. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
