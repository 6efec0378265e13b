package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"placement-portal/internal/models"
	"placement-portal/internal/storage"
	"placement-portal/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// resetTokenTTL bounds how long a password reset token stays usable.
const resetTokenTTL = 15 * time.Minute

// AuthClaims is the JWT payload issued on login. ID (jti) is what logout
// revokes; Subject is the account id.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type userService struct {
	repo          storage.UserRepository
	tokens        storage.TokenStore
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens storage.TokenStore, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:          repo,
		tokens:        tokens,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}

	user, err := s.repo.Create(ctx, &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", ErrInvalidCredentials // Use specific service error
		}
		log.Printf("Error fetching user by email during login: %v", err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", ErrInvalidCredentials // Use specific service error
	}

	if !user.IsActive {
		log.Printf("Login attempt failed for email %s: account deactivated", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	// Generate JWT Token
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}

	return user, tokenString, nil
}

// Logout denylists the current token's id until its natural expiry.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.tokens.RevokeToken(ctx, req.TokenID, req.ExpiresAt); err != nil {
		log.Printf("UserService: Error revoking token: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// ForgotPassword issues an opaque reset token for the account. An unknown
// email returns an empty token and no error, so callers cannot probe which
// addresses have accounts.
func (s *userService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Password reset requested for unknown email")
			return "", nil
		}
		return "", fmt.Errorf("internal error during password reset: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.tokens.StoreResetToken(ctx, token, user.Email, resetTokenTTL); err != nil {
		return "", fmt.Errorf("internal error during password reset: %w", err)
	}

	return token, nil
}

func (s *userService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	email, err := s.tokens.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: reset token is invalid or expired", ErrValidation)
		}
		return fmt.Errorf("internal error during password reset: %w", err)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("internal error during password reset: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("internal error during password reset: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return MapRepoError(err, "reset password")
	}

	log.Printf("Password reset completed for user %s", user.ID)
	return nil
}
