package repository

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/build/model"
)

// RepositoryInterface defines saved-build persistence operations
type RepositoryInterface interface {
	Create(ctx context.Context, build *model.Build) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Build, error)
	ListPublic(ctx context.Context, filter *model.BuildFilter) ([]*model.Build, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Build, error)
	Update(ctx context.Context, build *model.Build) error
	Delete(ctx context.Context, id uuid.UUID) error

	Like(ctx context.Context, buildID, userID uuid.UUID) error
	Unlike(ctx context.Context, buildID, userID uuid.UUID) error
	HasLiked(ctx context.Context, buildID, userID uuid.UUID) (bool, error)
	CountLikes(ctx context.Context, buildID uuid.UUID) (int, error)
	SetLikesCount(ctx context.Context, buildID uuid.UUID, count int) error
	ListStaleLikeCounts(ctx context.Context, limit int) ([]uuid.UUID, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, buildID uuid.UUID) ([]*model.Comment, error)
	GetComment(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}
