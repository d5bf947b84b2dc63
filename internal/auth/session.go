package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound indicates the session was revoked or never existed.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore tracks live sessions in Redis keyed by token id. Login
// creates the entry, logout deletes it, so a valid JWT alone is not enough
// to pass the middleware once the session has ended.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore builds the store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create registers a session for the token id with the given TTL.
func (s *SessionStore) Create(ctx context.Context, tokenID, accountID string, ttl time.Duration) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Set(ctx, sessionKeyPrefix+tokenID, accountID, ttl).Err()
}

// Validate checks the session exists and belongs to the account.
func (s *SessionStore) Validate(ctx context.Context, tokenID, accountID string) error {
	if s == nil || s.client == nil {
		return nil
	}
	stored, err := s.client.Get(ctx, sessionKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return ErrSessionNotFound
	}
	if err != nil {
		return err
	}
	if stored != accountID {
		return ErrSessionNotFound
	}
	return nil
}

// Delete ends the session for the token id.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, sessionKeyPrefix+tokenID).Err()
}
