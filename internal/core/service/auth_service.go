package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
	"github.com/siriart/billing-admin/internal/pkg/cipher"
)

// DefaultSessionTTL is how long an issued session cookie stays valid.
const DefaultSessionTTL = 2 * time.Hour

// AuthService implements login, session verification, and the password
// retrieval read-path over the encrypted-cookie session scheme.
type AuthService struct {
	users      ports.UserRepository
	cipher     *cipher.Cipher
	revoker    ports.SessionRevoker // nil → stateless sessions, no revocation
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, c *cipher.Cipher, revoker ports.SessionRevoker, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &AuthService{users: users, cipher: c, revoker: revoker, sessionTTL: sessionTTL, log: log}
}

// Login validates credentials and issues an encrypted session cookie value.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("missing_fields").Inc()
		return nil, "", time.Time{}, domain.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}

	stored, err := s.cipher.Decrypt(user.Password)
	if err != nil || subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := domain.Session{
		SID:       uuid.NewString(),
		User:      user.Sanitized(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.sessionTTL),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("encode session: %w", err)
	}
	cookieValue, err := s.cipher.Encrypt(string(payload))
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("encrypt session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	sanitized := user.Sanitized()
	return &sanitized, cookieValue, session.ExpiresAt, nil
}

// Verify decrypts and validates a session cookie value. Every failure mode
// collapses into ErrInvalidSession: a bad cookie is an auth problem, not a
// server error.
func (s *AuthService) Verify(ctx context.Context, cookieValue string) (*domain.Session, error) {
	payload, err := s.cipher.Decrypt(cookieValue)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, domain.ErrInvalidSession
	}
	if session.Expired(time.Now().UTC()) {
		return nil, domain.ErrInvalidSession
	}

	if s.revoker != nil && session.SID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, session.SID)
		if err != nil {
			// The revocation list is best-effort; an unreachable backend
			// must not lock every user out.
			s.log.Error().Err(err).Msg("revocation check failed")
		} else if revoked {
			return nil, domain.ErrInvalidSession
		}
	}

	return &session, nil
}

// Logout revokes the session carried by cookieValue for its remaining
// lifetime. Without a revocation backend, or with an already-invalid
// cookie, it is a no-op.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	if s.revoker == nil {
		return nil
	}

	payload, err := s.cipher.Decrypt(cookieValue)
	if err != nil {
		return nil
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil || session.SID == "" {
		return nil
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, session.SID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	metrics.SessionsRevokedTotal.Inc()
	return nil
}

// Password returns a user's stored password in plaintext. This backs the
// admin UI's password reveal; the route is admin-gated.
func (s *AuthService) Password(ctx context.Context, userID string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	plain, err := s.cipher.Decrypt(user.Password)
	if err != nil {
		return "", err
	}
	return plain, nil
}
