package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterRequest creates a new customer account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 100)),
	)
}

// LoginRequest exchanges credentials for a token pair
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// RefreshRequest exchanges a refresh token for a new token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

// UpdateProfileRequest edits the caller's own account
type UpdateProfileRequest struct {
	FullName *string `json:"full_name"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// UpdateRoleRequest changes another user's role (admin only)
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role, validation.Required),
	)
}

// TokenPair is the login/refresh response payload
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponse bundles the account with its tokens
type AuthResponse struct {
	User   *User     `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// UserFilter pages the admin user list
type UserFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (f *UserFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (f *UserFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
