// Package session stores server-side login sessions in Redis.
//
// Sessions are an optional second credential channel next to the signed
// token: they exist only in the long-running server deployment and are
// local to it, so horizontally scaled deployments must treat the token
// as the source of truth.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ghanalingo/internal/feature/auth/domain/entity"
)

// ErrNotFound is returned when a session ID has no live entry, either
// because it never existed or because its TTL ran out.
var ErrNotFound = errors.New("session not found")

// Store keeps login sessions in Redis under a shared key prefix, each
// with a rolling TTL matching the auth cookie lifetime.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore creates a session Store.
func NewStore(client *redis.Client, prefix string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *Store) key(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

// newID returns a 128-bit random hex session identifier.
func newID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Create stores the identity under a fresh session ID and returns the ID.
func (s *Store) Create(ctx context.Context, ident entity.Identity) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Find loads the identity for a session ID and refreshes its TTL, so an
// active session keeps sliding forward with the cookie.
func (s *Store) Find(ctx context.Context, id string) (*entity.Identity, error) {
	data, err := s.client.GetEx(ctx, s.key(id), s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var ident entity.Identity
	if err := json.Unmarshal(data, &ident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &ident, nil
}

// Destroy removes a session. Destroying a session that no longer exists
// is not an error; logout stays idempotent.
func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}
