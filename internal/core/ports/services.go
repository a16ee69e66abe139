package ports

import (
	"context"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// ChangeLogger is the best-effort audit trail. Implementations must never
// fail or block the mutation that triggered the entry.
type ChangeLogger interface {
	Log(resource, message string)
	Logf(resource, format string, args ...any)
}

// SessionRevoker is the optional server-side revocation list. A nil revoker
// leaves sessions fully stateless and cookie-only.
type SessionRevoker interface {
	Revoke(ctx context.Context, sid string, ttl time.Duration) error
	IsRevoked(ctx context.Context, sid string) (bool, error)
}

// AuthService issues and verifies encrypted session cookies.
type AuthService interface {
	// Login validates credentials and returns the sanitized user together
	// with the encrypted cookie value and its expiry.
	Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error)
	// Verify decrypts a cookie value into a live session. Expired, revoked,
	// or undecryptable cookies yield domain.ErrInvalidSession.
	Verify(ctx context.Context, cookieValue string) (*domain.Session, error)
	// Logout revokes the session carried by the cookie value, when a
	// revocation backend is configured.
	Logout(ctx context.Context, cookieValue string) error
	// Password returns the decrypted plaintext password for a user id.
	Password(ctx context.Context, userID string) (string, error)
}

// ProductService owns product CRUD plus its audit trail.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, apply func(*domain.Product)) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// StoreService owns store CRUD plus its audit trail.
type StoreService interface {
	List(ctx context.Context) ([]domain.Store, error)
	Get(ctx context.Context, id string) (*domain.Store, error)
	Create(ctx context.Context, store domain.Store) (*domain.Store, error)
	Update(ctx context.Context, id string, apply func(*domain.Store)) (*domain.Store, error)
	Delete(ctx context.Context, id string) error
}

// UserService owns user CRUD. Every returned user is sanitized.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user domain.User, plainPassword string) (*domain.User, error)
	// Update applies field changes; a non-empty plainPassword additionally
	// re-encrypts and replaces the stored password.
	Update(ctx context.Context, id string, apply func(*domain.User), plainPassword string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// SettingsService owns the settings document.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Replace(ctx context.Context, settings domain.Settings) (domain.Settings, error)
}

// BillService owns the bills collection.
type BillService interface {
	List(ctx context.Context) ([]domain.Bill, error)
	Create(ctx context.Context, bill domain.Bill) (*domain.Bill, error)
	Import(ctx context.Context, bills []domain.Bill) (imported, skipped int, err error)
	Delete(ctx context.Context, id string) error
}

// NotificationService owns the notification feed.
type NotificationService interface {
	// List returns up to limit notifications (all when limit <= 0),
	// optionally unread only, plus the unread count and the size of the
	// whole feed. Both counts ignore the filters.
	List(ctx context.Context, unreadOnly bool, limit int) (items []domain.Notification, unread, total int, err error)
	Get(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	// MarkAllRead flags every notification read.
	MarkAllRead(ctx context.Context) error
}
