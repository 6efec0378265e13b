// internal/storage/redisrepo/tokens.go
package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"placement-portal/internal/storage"

	"github.com/redis/go-redis/v9"
)

const (
	resetTokenPrefix   = "password_reset:"
	revokedTokenPrefix = "revoked_token:"
)

// TokenStore implements the storage.TokenStore interface using Redis. Both
// key families expire on their own; nothing here needs cleanup jobs.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a new TokenStore.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Compile-time check to ensure TokenStore implements storage.TokenStore
var _ storage.TokenStore = (*TokenStore)(nil)

// StoreResetToken maps an opaque reset token to the account email for ttl.
func (s *TokenStore) StoreResetToken(ctx context.Context, token, email string, ttl time.Duration) error {
	key := resetTokenPrefix + token
	if err := s.client.Set(ctx, key, email, ttl).Err(); err != nil {
		log.Printf("Error storing reset token: %v\n", err)
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken returns the email a reset token was issued for and deletes
// it atomically, so a token can only ever be used once.
func (s *TokenStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	key := resetTokenPrefix + token
	email, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", storage.ErrNotFound
		}
		log.Printf("Error consuming reset token: %v\n", err)
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}
	return email, nil
}

// RevokeToken denylists a JWT id until the token would have expired anyway.
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired, nothing to revoke.
		return nil
	}

	key := revokedTokenPrefix + tokenID
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		log.Printf("Error revoking token %s: %v\n", tokenID, err)
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a JWT id has been denylisted.
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenPrefix + tokenID
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("Error checking token revocation for %s: %v\n", tokenID, err)
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return exists > 0, nil
}
