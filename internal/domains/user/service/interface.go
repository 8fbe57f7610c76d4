package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/user/model"
)

// ServiceInterface defines account and authentication operations
type ServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error)

	// Admin operations
	ListUsers(ctx context.Context, filter *model.UserFilter) ([]*model.User, int64, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, req *model.UpdateRoleRequest) (*model.User, error)
}
