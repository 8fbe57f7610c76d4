package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleCustomer.IsValid())
	assert.True(t, RoleModerator.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Email:    "user@example.com",
		Password: "correct-horse",
		FullName: "Nguyen Van B",
	}
	assert.NoError(t, valid.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, shortPassword.Validate())

	// bcrypt rejects inputs above 72 bytes
	longPassword := valid
	longPassword.Password = strings.Repeat("a", 73)
	assert.Error(t, longPassword.Validate())

	noName := valid
	noName.FullName = ""
	assert.Error(t, noName.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "user@example.com", Password: "x"}.Validate())
	assert.Error(t, LoginRequest{Email: "user@example.com"}.Validate())
	assert.Error(t, LoginRequest{Password: "x"}.Validate())
}
