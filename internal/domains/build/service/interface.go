package service

import (
	"context"

	"github.com/google/uuid"

	"pcstore-backend/internal/domains/build/model"
	usermodel "pcstore-backend/internal/domains/user/model"
)

// BuildDetail is a build plus viewer-dependent state
type BuildDetail struct {
	Build    *model.Build `json:"build"`
	Liked    bool         `json:"liked"`
	Comments []*model.Comment `json:"comments"`
}

// ServiceInterface defines community build operations
type ServiceInterface interface {
	ListPublic(ctx context.Context, filter *model.BuildFilter) ([]*model.Build, int64, error)
	GetBuild(ctx context.Context, viewerID *uuid.UUID, buildID uuid.UUID) (*BuildDetail, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Build, error)
	UpdateBuild(ctx context.Context, userID uuid.UUID, buildID uuid.UUID, req *model.UpdateBuildRequest) (*model.Build, error)
	DeleteBuild(ctx context.Context, userID uuid.UUID, role usermodel.Role, buildID uuid.UUID) error

	Like(ctx context.Context, userID, buildID uuid.UUID) error
	Unlike(ctx context.Context, userID, buildID uuid.UUID) error

	AddComment(ctx context.Context, userID, buildID uuid.UUID, req *model.CommentRequest) (*model.Comment, error)
	DeleteComment(ctx context.Context, userID uuid.UUID, role usermodel.Role, commentID uuid.UUID) error

	// Worker entry points
	RecountLikes(ctx context.Context, buildID uuid.UUID) error
	ReconcileLikeCounts(ctx context.Context) (int, error)
}
