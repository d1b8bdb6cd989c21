package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"elearning/internal/auth"
	apperrors "elearning/internal/errors"
	"elearning/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		user          *model.User
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:     "successful registration defaults role to USER",
			user:     &model.User{Name: "Test User", Email: "test@example.com"},
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByEmail", mock.Anything, "test@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:     "explicit role is kept",
			user:     &model.User{Name: "Admin", Email: "admin@example.com", Role: model.RoleAdmin},
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByEmail", mock.Anything, "admin@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedRole: model.RoleAdmin,
		},
		{
			name:     "duplicate email fails with conflict",
			user:     &model.User{Name: "Existing", Email: "existing@example.com"},
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByEmail", mock.Anything, "existing@example.com").Return(true, nil)
			},
			expectedError: apperrors.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			created, err := svc.Register(context.Background(), tt.user, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, tt.expectedRole, created.Role)
				assert.NotEmpty(t, created.PasswordHash)
				assert.NotEqual(t, tt.password, created.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           1,
					Email:        "test@example.com",
					PasswordHash: string(hashed),
					Role:         model.RoleUser,
				}, nil)
			},
			expectedRole: model.RoleUser,
		},
		{
			name:     "unknown email reports not found",
			email:    "missing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:     "wrong password reports the same not found",
			email:    "test@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           1,
					Email:        "test@example.com",
					PasswordHash: string(hashed),
					Role:         model.RoleUser,
				}, nil)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			result, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.Token)
				assert.Equal(t, tt.expectedRole, result.Role)
				assert.Equal(t, "7 days", result.ExpirationTime)

				subject, err := jwtService.ExtractSubject(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, tt.email, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
