// Package redis implements the optional server-side session revocation
// list. Without it sessions are cookie-only: a logged-out cookie keeps
// working until its embedded expiry.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDialTimeout = 5 * time.Second

// Config captures the settings for the revocation backend.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// SessionRevoker records revoked session ids so a logged-out cookie stops
// working before its embedded expiry. Keys carry a TTL equal to the
// remaining session lifetime, after which the cookie is dead anyway.
// Key format: revoked:<sid>
type SessionRevoker struct {
	client *redis.Client
}

// Connect dials the revocation backend and verifies it with a ping.
func Connect(ctx context.Context, cfg Config) (*SessionRevoker, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &SessionRevoker{client: client}, nil
}

// NewSessionRevoker wraps an existing client.
func NewSessionRevoker(client *redis.Client) *SessionRevoker {
	return &SessionRevoker{client: client}
}

// Revoke marks the session id as revoked until ttl elapses.
func (r *SessionRevoker) Revoke(ctx context.Context, sid string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(sid), "1", ttl).Err()
}

// IsRevoked reports whether the session id has been revoked.
func (r *SessionRevoker) IsRevoked(ctx context.Context, sid string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(sid)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// Client exposes the underlying connection for the readiness probe.
func (r *SessionRevoker) Client() *redis.Client {
	return r.client
}

// Close releases the connection.
func (r *SessionRevoker) Close() error {
	return r.client.Close()
}

func (r *SessionRevoker) key(sid string) string {
	return "revoked:" + sid
}
