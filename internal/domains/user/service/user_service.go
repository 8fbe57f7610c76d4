package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pcstore-backend/internal/domains/user/model"
	"pcstore-backend/internal/domains/user/repository"
	"pcstore-backend/pkg/jwt"
	"pcstore-backend/pkg/logger"
)

const bcryptCost = 12

type userService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         model.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": user.ID.String(),
	})
	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		// Same error for unknown email and wrong password
		return nil, model.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *userService) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	// Role comes from the database, not the old token, so role changes take
	// effect on the next refresh
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, filter *model.UserFilter) ([]*model.User, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *userService) UpdateRole(ctx context.Context, userID uuid.UUID, req *model.UpdateRoleRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, model.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, userID, req.Role); err != nil {
		return nil, err
	}

	logger.Info("user role updated", map[string]interface{}{
		"user_id": userID.String(),
		"role":    string(req.Role),
	})
	return s.repo.GetByID(ctx, userID)
}

func (s *userService) authResponse(user *model.User) (*model.AuthResponse, error) {
	pair, err := s.tokenPair(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{User: user, Tokens: pair}, nil
}

func (s *userService) tokenPair(user *model.User) (model.TokenPair, error) {
	access, expiresAt, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}
