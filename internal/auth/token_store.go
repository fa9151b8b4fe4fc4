package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitcoach/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// TokenStoreInterface defines the interface for refresh token storage.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps refresh tokens in redis keyed by JTI.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token in redis with TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	key := refreshTokenKeyPrefix + tokenID
	return s.cache.Set(ctx, key, []byte(userID.String()), ttl)
}

// GetRefreshToken returns the user a refresh token was issued to.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, error) {
	key := refreshTokenKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil || data == nil {
		return uuid.Nil, fmt.Errorf("refresh token not found")
	}
	userID, err := uuid.Parse(string(data))
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return userID, nil
}

// DeleteRefreshToken removes a refresh token from redis.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
