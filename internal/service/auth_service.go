package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"elearning/internal/auth"
	apperrors "elearning/internal/errors"
	"elearning/internal/model"
	"elearning/internal/repository"
)

const bcryptCost = 10

// LoginResult carries everything a successful login returns.
type LoginResult struct {
	Token          string
	Role           string
	ExpirationTime string
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, user *model.User, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register hashes the password and persists a new account. Role defaults
// to USER when absent. The email unique index is the real guard against
// concurrent registrations; the existence check just gives a clean error
// for the common case.
func (s *authService) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("check email existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hashed)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both surface as ErrUserNotFound so callers cannot probe
// which one failed.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	token, err := s.jwtService.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:          token,
		Role:           user.Role,
		ExpirationTime: "7 days",
	}, nil
}
