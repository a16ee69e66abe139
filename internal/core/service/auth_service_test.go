package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/pkg/cipher"
)

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) All(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			clone := u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) (*domain.User, error) {
	user.ID = "stub"
	r.users = append(r.users, user)
	return &user, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, apply func(*domain.User)) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			apply(&r.users[i])
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			deleted := r.users[i]
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubRevoker struct {
	revoked map[string]bool
}

func (r *stubRevoker) Revoke(_ context.Context, sid string, _ time.Duration) error {
	if r.revoked == nil {
		r.revoked = map[string]bool{}
	}
	r.revoked[sid] = true
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, sid string) (bool, error) {
	return r.revoked[sid], nil
}

func newAuthFixture(t *testing.T) (*AuthService, *cipher.Cipher, *stubRevoker) {
	t.Helper()
	c, err := cipher.New("test-secret")
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	encrypted, err := c.Encrypt("s3cret")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	repo := &stubUserRepo{users: []domain.User{{
		ID:       "1",
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: encrypted,
		Role:     domain.RoleAdmin,
	}}}
	revoker := &stubRevoker{}
	return NewAuthService(repo, c, revoker, time.Hour, zerolog.Nop()), c, revoker
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, c, _ := newAuthFixture(t)

	user, cookieValue, expires, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Password != "" {
		t.Fatalf("sanitized user still carries a password")
	}
	if cookieValue == "" {
		t.Fatalf("expected cookie value")
	}
	if !expires.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", expires)
	}

	payload, err := c.Decrypt(cookieValue)
	if err != nil {
		t.Fatalf("cookie does not decrypt: %v", err)
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		t.Fatalf("cookie payload not a session: %v", err)
	}
	if !strings.EqualFold(session.User.Email, "alice@example.com") {
		t.Fatalf("unexpected session email: %s", session.User.Email)
	}
	if session.User.Password != "" {
		t.Fatalf("session payload carries a password")
	}
	if session.SID == "" {
		t.Fatalf("session has no sid")
	}
	if strings.Contains(payload, "s3cret") {
		t.Fatalf("plaintext password leaked into session payload")
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, _, _, err := svc.Login(context.Background(), "", "x"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_Login_UniformRejection(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, _, _, errUnknown := svc.Login(context.Background(), "ghost@example.com", "s3cret")
	_, _, _, errWrongPw := svc.Login(context.Background(), "alice@example.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("rejection messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_Verify_RoundTrip(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, cookieValue, _, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	session, err := svc.Verify(context.Background(), cookieValue)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if session.User.ID != "1" {
		t.Fatalf("unexpected session user: %+v", session.User)
	}
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Verify(context.Background(), "not-a-cookie"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestAuthService_Verify_Expired(t *testing.T) {
	svc, c, _ := newAuthFixture(t)

	session := domain.Session{
		SID:       "sid-1",
		User:      domain.User{ID: "1", Email: "alice@example.com"},
		IssuedAt:  time.Now().Add(-3 * time.Hour),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	payload, _ := json.Marshal(session)
	cookieValue, err := c.Encrypt(string(payload))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := svc.Verify(context.Background(), cookieValue); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired session, got %v", err)
	}
}

func TestAuthService_Logout_Revokes(t *testing.T) {
	svc, _, revoker := newAuthFixture(t)

	_, cookieValue, _, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background(), cookieValue); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(revoker.revoked) != 1 {
		t.Fatalf("expected one revoked sid, got %d", len(revoker.revoked))
	}

	if _, err := svc.Verify(context.Background(), cookieValue); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected revoked session to be invalid, got %v", err)
	}
}

func TestAuthService_Password(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	plain, err := svc.Password(context.Background(), "1")
	if err != nil {
		t.Fatalf("password: %v", err)
	}
	if plain != "s3cret" {
		t.Fatalf("expected decrypted password, got %q", plain)
	}

	if _, err := svc.Password(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Password_DecryptFailure(t *testing.T) {
	c, err := cipher.New("test-secret")
	if err != nil {
		t.Fatalf("cipher: %v", err)
	}
	repo := &stubUserRepo{users: []domain.User{{ID: "1", Email: "a@b.c", Password: "garbage"}}}
	svc := NewAuthService(repo, c, nil, time.Hour, zerolog.Nop())

	if _, err := svc.Password(context.Background(), "1"); !errors.Is(err, cipher.ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}
