package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func (s *Service) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	const op = "service.Login"

	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%s: username and password are required: %w", op, response.ErrValidation)
	}

	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, response.ErrUnauthorized)
	}

	token, err := s.tokens.NewToken(user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &api.LoginResponse{
		Token: token,
		User:  userResponse(user),
	}, nil
}

// Register creates a staff account. Admin-only at the API boundary.
func (s *Service) Register(ctx context.Context, req *api.RegisterRequest) (*api.UserResponse, error) {
	const op = "service.Register"

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, fmt.Errorf("%s: username and password are required: %w", op, response.ErrValidation)
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.RoleReception
	}
	if role != models.RoleAdmin && role != models.RoleReception {
		return nil, fmt.Errorf("%s: unknown role %q: %w", op, req.Role, response.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Name:         req.Name,
	}

	id, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, response.ErrConflict) {
			return nil, fmt.Errorf("%s: username taken: %w", op, response.ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := userResponse(created)
	return &resp, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*api.UserResponse, error) {
	const op = "service.GetUser"

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := userResponse(user)
	return &resp, nil
}

func userResponse(u *models.User) api.UserResponse {
	return api.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Name:     u.Name,
	}
}
