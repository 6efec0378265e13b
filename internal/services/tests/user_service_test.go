package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "placement-portal/internal/mocks"
	"placement-portal/internal/models"
	"placement-portal/internal/services"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
)

var (
	testUserID = uuid.New() // Use a consistent ID for predictable mocks/results
)

// Helper to create a pointer to a string
func ptr(s string) *string { return &s }

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockTokens := mock_storage.NewMockTokenStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockTokens, jwtSecret, jwtDuration)

	repoErrDbConnectionLost := errors.New("database connection lost")

	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		mockSetup     func(repo *mock_storage.MockUserRepository)
		expectedUser  *models.User
		expectedError error
		errorContains string
	}{
		{
			name: "Success",
			req: &dto.RegisterRequest{
				Email:    "student@example.com",
				Password: "password123",
				Role:     "STUDENT",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *models.User) (*models.User, error) {
						// Service hashes before storing; the plaintext must not reach the repo.
						assert.NotEqual(t, "password123", user.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
						created := *user
						created.ID = testUserID
						created.IsActive = true
						return &created, nil
					}).Times(1)
			},
			expectedUser: &models.User{
				ID:    testUserID,
				Email: "student@example.com",
				Role:  models.RoleStudent,
			},
			expectedError: nil,
		},
		{
			name: "Conflict - Duplicate Email",
			req: &dto.RegisterRequest{
				Email:    "taken@example.com",
				Password: "password123",
				Role:     "RECRUITER",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateEmail).Times(1)
			},
			expectedUser:  nil,
			expectedError: services.ErrConflict,
		},
		{
			name: "Repository Error",
			req: &dto.RegisterRequest{
				Email:    "error@example.com",
				Password: "password123",
				Role:     "STUDENT",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, repoErrDbConnectionLost).Times(1)
			},
			expectedUser:  nil,
			expectedError: repoErrDbConnectionLost,
			errorContains: "internal error creating user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tt.mockSetup(mockUserRepo)

			user, err := userService.Register(ctx, tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.expectedUser.ID, user.ID)
				assert.Equal(t, tt.expectedUser.Email, user.Email)
				assert.Equal(t, tt.expectedUser.Role, user.Role)
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockTokens := mock_storage.NewMockTokenStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockTokens, jwtSecret, jwtDuration)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	activeUser := &models.User{
		ID:           testUserID,
		Email:        "student@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		IsActive:     true,
	}
	inactiveUser := &models.User{
		ID:           uuid.New(),
		Email:        "inactive@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		IsActive:     false,
	}

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		mockSetup     func(repo *mock_storage.MockUserRepository)
		expectedError error
	}{
		{
			name: "Success",
			req:  &dto.LoginRequest{Email: activeUser.Email, Password: "correct-password"},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), activeUser.Email).Return(activeUser, nil).Times(1)
			},
			expectedError: nil,
		},
		{
			name: "Unknown Email",
			req:  &dto.LoginRequest{Email: "nobody@example.com", Password: "correct-password"},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "Wrong Password",
			req:  &dto.LoginRequest{Email: activeUser.Email, Password: "wrong-password"},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), activeUser.Email).Return(activeUser, nil).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "Deactivated Account",
			req:  &dto.LoginRequest{Email: inactiveUser.Email, Password: "correct-password"},
			mockSetup: func(repo *mock_storage.MockUserRepository) {
				repo.EXPECT().GetByEmail(gomock.Any(), inactiveUser.Email).Return(inactiveUser, nil).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tt.mockSetup(mockUserRepo)

			user, tokenString, err := userService.Login(ctx, tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, tokenString)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotEmpty(t, tokenString)

			// The token must carry the account id, the role and a jti for logout.
			claims := &services.AuthClaims{}
			parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			})
			require.NoError(t, err)
			require.True(t, parsed.Valid)
			assert.Equal(t, activeUser.ID.String(), claims.Subject)
			assert.Equal(t, string(models.RoleStudent), claims.Role)
			assert.NotEmpty(t, claims.ID)
			assert.WithinDuration(t, time.Now().Add(jwtDuration), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestUserService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockTokens := mock_storage.NewMockTokenStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockTokens, jwtSecret, jwtDuration)

	ctx := context.Background()
	expiresAt := time.Now().Add(jwtDuration)

	t.Run("Success", func(t *testing.T) {
		mockTokens.EXPECT().RevokeToken(gomock.Any(), "token-id-1", expiresAt).Return(nil).Times(1)

		err := userService.Logout(ctx, &dto.LogoutRequest{TokenID: "token-id-1", ExpiresAt: expiresAt})
		require.NoError(t, err)
	})

	t.Run("Store Error", func(t *testing.T) {
		mockTokens.EXPECT().RevokeToken(gomock.Any(), "token-id-2", expiresAt).Return(errors.New("redis down")).Times(1)

		err := userService.Logout(ctx, &dto.LogoutRequest{TokenID: "token-id-2", ExpiresAt: expiresAt})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "internal error during logout")
	})
}

func TestUserService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockTokens := mock_storage.NewMockTokenStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockTokens, jwtSecret, jwtDuration)

	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user := &models.User{ID: testUserID, Email: "student@example.com", IsActive: true}
		mockUserRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil).Times(1)

		var storedToken string
		mockTokens.EXPECT().
			StoreResetToken(gomock.Any(), gomock.Any(), user.Email, 15*time.Minute).
			DoAndReturn(func(_ context.Context, token, _ string, _ time.Duration) error {
				storedToken = token
				return nil
			}).Times(1)

		token, err := userService.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: user.Email})
		require.NoError(t, err)
		assert.Len(t, token, 64) // 32 random bytes, hex encoded
		assert.Equal(t, storedToken, token)
	})

	t.Run("Unknown Email Is Silent", func(t *testing.T) {
		mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, storage.ErrNotFound).Times(1)

		token, err := userService.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "nobody@example.com"})
		require.NoError(t, err)
		assert.Empty(t, token)
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	mockTokens := mock_storage.NewMockTokenStore(ctrl)
	userService := services.NewUserService(mockUserRepo, mockTokens, jwtSecret, jwtDuration)

	ctx := context.Background()
	user := &models.User{ID: testUserID, Email: "student@example.com", IsActive: true}

	t.Run("Success", func(t *testing.T) {
		mockTokens.EXPECT().ConsumeResetToken(gomock.Any(), "valid-token").Return(user.Email, nil).Times(1)
		mockUserRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil).Times(1)
		mockUserRepo.EXPECT().
			UpdatePassword(gomock.Any(), user.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-1")))
				return nil
			}).Times(1)

		err := userService.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: "valid-token", NewPassword: "new-password-1"})
		require.NoError(t, err)
	})

	t.Run("Invalid Or Expired Token", func(t *testing.T) {
		mockTokens.EXPECT().ConsumeResetToken(gomock.Any(), "stale-token").Return("", storage.ErrNotFound).Times(1)

		err := userService.ResetPassword(ctx, &dto.ResetPasswordRequest{Token: "stale-token", NewPassword: "new-password-1"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrValidation))
	})
}
