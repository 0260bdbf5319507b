package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"acmedash/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// ErrTokenNotFound is returned when a refresh token is missing or expired.
var ErrTokenNotFound = errors.New("refresh token not found")

// TokenStoreInterface defines refresh token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID uint, email string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// tokenRecord is the payload stored per refresh token.
type tokenRecord struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// TokenStore keeps issued refresh tokens in Redis so logout can revoke them.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken records a refresh token with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	payload, err := json.Marshal(tokenRecord{UserID: userID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal token record: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves the user bound to a refresh token.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return 0, "", ErrTokenNotFound
	}
	var record tokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return 0, "", fmt.Errorf("unmarshal token record: %w", err)
	}
	return record.UserID, record.Email, nil
}

// DeleteRefreshToken revokes a refresh token.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
