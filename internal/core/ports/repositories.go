package ports

import (
	"context"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// UserRepository persists the users.json collection.
type UserRepository interface {
	All(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches case-insensitively; email is the lookup key.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, apply func(*domain.User)) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// ProductRepository persists the products.json collection.
type ProductRepository interface {
	All(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, apply func(*domain.Product)) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}

// StoreRepository persists the stores.json collection. Lookups accept legacy
// "store_<n>" ids and translate them before matching.
type StoreRepository interface {
	All(ctx context.Context) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	Create(ctx context.Context, store domain.Store) (*domain.Store, error)
	Update(ctx context.Context, id string, apply func(*domain.Store)) (*domain.Store, error)
	Delete(ctx context.Context, id string) (*domain.Store, error)
}

// SettingsRepository persists the single settings.json object document.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Put(ctx context.Context, settings domain.Settings) error
}

// BillRepository persists the bills.json collection.
type BillRepository interface {
	All(ctx context.Context) ([]domain.Bill, error)
	Append(ctx context.Context, bill domain.Bill) (*domain.Bill, error)
	// Import appends bills whose ids are not present yet and reports both
	// the imported and the skipped ones.
	Import(ctx context.Context, bills []domain.Bill) (imported, skipped []domain.Bill, err error)
	Delete(ctx context.Context, id string) (*domain.Bill, error)
}

// NotificationRepository persists the notifications.json collection.
type NotificationRepository interface {
	All(ctx context.Context) ([]domain.Notification, error)
	FindByID(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	// MarkAllRead flags the whole feed read and reports how many entries
	// were still unread.
	MarkAllRead(ctx context.Context) (int, error)
}
