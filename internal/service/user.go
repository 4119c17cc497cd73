package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kmalyshev/online_store/internal/hash"
	"github.com/kmalyshev/online_store/internal/models"
	"github.com/kmalyshev/online_store/internal/repo"
	"github.com/kmalyshev/online_store/internal/transport"
	"github.com/kmalyshev/online_store/internal/util"
)

const accessTokenTTL = 30 * time.Minute

type UserService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func (s *UserService) Register(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	if len(req.Username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters: %w", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("email required: %w", ErrValidation)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", ErrPersistence, err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, mapRepoErr(err)
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", mapRepoErr(err)
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", fmt.Errorf("incorrect username or password: %w", ErrValidation)
	}

	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": role(user),
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %w", ErrPersistence, err)
	}
	return signed, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("skip and limit must be non-negative: %w", ErrValidation)
	}
	if limit == 0 {
		limit = util.DefaultPageSize
	} else if limit > util.MaxPageSize {
		limit = util.MaxPageSize
	}

	users, err := s.Repo.ListUsers(ctx, skip, limit)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	user, err := s.Repo.UpdateUser(ctx, id, fields)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.DeleteUser(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	if len(next) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	}

	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if !hash.CheckPassword(user.PasswordHash, current) {
		return fmt.Errorf("current password is incorrect: %w", ErrValidation)
	}

	passwordHash, err := hash.HashPassword(next)
	if err != nil {
		return fmt.Errorf("%w: hash password: %w", ErrPersistence, err)
	}
	_, err = s.Repo.UpdateUser(ctx, id, map[string]any{"password_hash": passwordHash})
	return mapRepoErr(err)
}

func role(u *models.User) string {
	if u.IsSuperuser {
		return "admin"
	}
	return "user"
}
