package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/user/model"
)

// RepositoryInterface defines user persistence operations
type RepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *model.User) error
	List(ctx context.Context, filter *model.UserFilter) ([]*model.User, int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role model.Role) error
}
