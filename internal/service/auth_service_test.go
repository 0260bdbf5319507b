package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"acmedash/internal/auth"
	"acmedash/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) CreateBatch(ctx context.Context, users []model.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
		propagated    bool
	}{
		{
			name:     "successful login",
			email:    "admin@acme.dev",
			password: "123456",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@acme.dev").Return(&model.User{
					ID:           1,
					Email:        "admin@acme.dev",
					PasswordHash: string(hashed),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "admin@acme.dev", mock.Anything).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@acme.dev",
			password: "123456",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@acme.dev").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@acme.dev",
			password: "hunter2",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@acme.dev").Return(&model.User{
					ID:           1,
					Email:        "admin@acme.dev",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "token store failure is a recognized auth failure",
			email:    "admin@acme.dev",
			password: "123456",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@acme.dev").Return(&model.User{
					ID:           1,
					Email:        "admin@acme.dev",
					PasswordHash: string(hashed),
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "admin@acme.dev", mock.Anything).
					Return(errors.New("redis down"))
			},
			expectedError: ErrAuthFailed,
		},
		{
			name:     "database failure propagates unchanged",
			email:    "admin@acme.dev",
			password: "123456",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "admin@acme.dev").Return(nil, errors.New("connection refused"))
			},
			propagated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
			case tt.propagated:
				assert.Error(t, err)
				assert.False(t, errors.Is(err, ErrInvalidCredentials))
				assert.False(t, errors.Is(err, ErrAuthFailed))
			default:
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "new@acme.dev",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@acme.dev").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "user already exists",
			email: "admin@acme.dev",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "admin@acme.dev").Return(&model.User{Email: "admin@acme.dev"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
			user, err := service.Register(context.Background(), "New User", tt.email, "password123")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "admin@acme.dev")
	assert.NoError(t, err)

	t.Run("refresh returns a new access token", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "admin@acme.dev", nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", auth.ErrTokenNotFound)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		_, err := service.RefreshToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		assert.NoError(t, service.Logout(context.Background(), refreshToken))
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := service.RefreshToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
