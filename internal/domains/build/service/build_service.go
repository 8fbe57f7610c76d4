package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"pcstore-backend/internal/domains/build/model"
	"pcstore-backend/internal/domains/build/repository"
	usermodel "pcstore-backend/internal/domains/user/model"
	"pcstore-backend/internal/shared"
	"pcstore-backend/pkg/logger"
)

// reconcileBatchSize caps how many drifted counters one reconcile run fixes
const reconcileBatchSize = 500

type buildService struct {
	repo        repository.RepositoryInterface
	asynqClient *asynq.Client
}

// NewBuildService creates the community build service. asynqClient may be
// nil in the worker process, which recounts synchronously anyway.
func NewBuildService(repo repository.RepositoryInterface, asynqClient *asynq.Client) ServiceInterface {
	return &buildService{
		repo:        repo,
		asynqClient: asynqClient,
	}
}

func (s *buildService) ListPublic(ctx context.Context, filter *model.BuildFilter) ([]*model.Build, int64, error) {
	filter.Normalize()
	return s.repo.ListPublic(ctx, filter)
}

func (s *buildService) GetBuild(ctx context.Context, viewerID *uuid.UUID, buildID uuid.UUID) (*BuildDetail, error) {
	build, err := s.repo.GetByID(ctx, buildID)
	if err != nil {
		return nil, err
	}
	if !build.IsPublic && (viewerID == nil || *viewerID != build.UserID) {
		return nil, model.ErrBuildNotFound
	}

	comments, err := s.repo.ListComments(ctx, buildID)
	if err != nil {
		return nil, err
	}

	liked := false
	if viewerID != nil {
		liked, err = s.repo.HasLiked(ctx, buildID, *viewerID)
		if err != nil {
			return nil, err
		}
	}

	return &BuildDetail{
		Build:    build,
		Liked:    liked,
		Comments: comments,
	}, nil
}

func (s *buildService) ListMine(ctx context.Context, userID uuid.UUID) ([]*model.Build, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *buildService) UpdateBuild(ctx context.Context, userID uuid.UUID, buildID uuid.UUID, req *model.UpdateBuildRequest) (*model.Build, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	build, err := s.repo.GetByID(ctx, buildID)
	if err != nil {
		return nil, err
	}
	if build.UserID != userID {
		return nil, model.ErrNotOwner
	}

	if req.Name != nil {
		build.Name = *req.Name
	}
	if req.Description != nil {
		build.Description = req.Description
	}
	if req.IsPublic != nil {
		build.IsPublic = *req.IsPublic
	}
	build.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, build); err != nil {
		return nil, err
	}
	return build, nil
}

// DeleteBuild allows the owner or a moderator to remove a build
func (s *buildService) DeleteBuild(ctx context.Context, userID uuid.UUID, role usermodel.Role, buildID uuid.UUID) error {
	build, err := s.repo.GetByID(ctx, buildID)
	if err != nil {
		return err
	}
	if build.UserID != userID && role != usermodel.RoleModerator && role != usermodel.RoleAdmin {
		return model.ErrNotOwner
	}
	return s.repo.Delete(ctx, buildID)
}

func (s *buildService) Like(ctx context.Context, userID, buildID uuid.UUID) error {
	build, err := s.repo.GetByID(ctx, buildID)
	if err != nil {
		return err
	}
	if !build.IsPublic && build.UserID != userID {
		return model.ErrBuildNotFound
	}

	if err := s.repo.Like(ctx, buildID, userID); err != nil {
		return err
	}
	s.enqueueRecount(buildID)
	return nil
}

func (s *buildService) Unlike(ctx context.Context, userID, buildID uuid.UUID) error {
	if err := s.repo.Unlike(ctx, buildID, userID); err != nil {
		return err
	}
	s.enqueueRecount(buildID)
	return nil
}

func (s *buildService) AddComment(ctx context.Context, userID, buildID uuid.UUID, req *model.CommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	build, err := s.repo.GetByID(ctx, buildID)
	if err != nil {
		return nil, err
	}
	if !build.IsPublic && build.UserID != userID {
		return nil, model.ErrBuildNotFound
	}

	comment := &model.Comment{
		ID:        uuid.New(),
		BuildID:   buildID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.repo.GetComment(ctx, comment.ID)
}

func (s *buildService) DeleteComment(ctx context.Context, userID uuid.UUID, role usermodel.Role, commentID uuid.UUID) error {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID && role != usermodel.RoleModerator && role != usermodel.RoleAdmin {
		return model.ErrNotOwner
	}
	return s.repo.DeleteComment(ctx, commentID)
}

// RecountLikes refreshes one build's denormalized like counter from the
// likes table. Invoked by the worker.
func (s *buildService) RecountLikes(ctx context.Context, buildID uuid.UUID) error {
	count, err := s.repo.CountLikes(ctx, buildID)
	if err != nil {
		return err
	}
	return s.repo.SetLikesCount(ctx, buildID, count)
}

// ReconcileLikeCounts repairs every drifted counter it finds, up to the
// batch limit. Returns how many builds were fixed.
func (s *buildService) ReconcileLikeCounts(ctx context.Context) (int, error) {
	ids, err := s.repo.ListStaleLikeCounts(ctx, reconcileBatchSize)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if err := s.RecountLikes(ctx, id); err != nil {
			return 0, err
		}
	}
	if len(ids) > 0 {
		logger.Info("like counts reconciled", map[string]interface{}{
			"builds": len(ids),
		})
	}
	return len(ids), nil
}

// enqueueRecount hands the counter refresh to the worker. A full enqueue
// failure only delays the refresh until the next reconcile run, so it is
// logged and swallowed.
func (s *buildService) enqueueRecount(buildID uuid.UUID) {
	if s.asynqClient == nil {
		return
	}
	payload, err := json.Marshal(shared.RecountLikesPayload{BuildID: buildID})
	if err != nil {
		return
	}
	task := asynq.NewTask(shared.TypeBuildRecountLikes, payload)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue(shared.QueueBuilds)); err != nil {
		logger.Error("enqueue like recount failed", err)
	}
}
