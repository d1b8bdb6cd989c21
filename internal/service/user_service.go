package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"elearning/internal/cache"
	apperrors "elearning/internal/errors"
	"elearning/internal/model"
	"elearning/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// ProfileUpdate carries the fields a user may change on their own
// profile. Blank fields are left untouched.
type ProfileUpdate struct {
	Name     string
	Email    string
	Password string
}

// UserService exposes user management operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*model.User, error)
	UpdateScore(ctx context.Context, email string, score int) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// UpdateProfile applies a partial update to the account identified by the
// authenticated email. Only non-blank fields overwrite existing values; an
// email change is re-checked against the unique constraint.
func (s *userService) UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" && update.Email != user.Email {
		taken, err := s.repo.ExistsByEmail(ctx, update.Email)
		if err != nil {
			return nil, fmt.Errorf("check email existence: %w", err)
		}
		if taken {
			return nil, apperrors.ErrEmailExists
		}
		user.Email = update.Email
	}
	if update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

// UpdateScore overwrites the score of the account identified by the
// authenticated email. Repeating the same call is a no-op on state.
func (s *userService) UpdateScore(ctx context.Context, email string, score int) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.UserScore = score
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}
