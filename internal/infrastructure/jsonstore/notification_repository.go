package jsonstore

import (
	"context"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// NotificationRepository implements ports.NotificationRepository over
// notifications.json. Entries are append-and-flag only; nothing deletes them.
type NotificationRepository struct {
	store *Store
	col   *Collection[domain.Notification]
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{
		store: store,
		col:   NewCollection[domain.Notification](store, "notifications"),
	}
}

func (r *NotificationRepository) All(_ context.Context) ([]domain.Notification, error) {
	return r.col.All()
}

func (r *NotificationRepository) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok, err := r.col.Find(func(n domain.Notification) bool { return n.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	return &n, nil
}

func (r *NotificationRepository) Create(_ context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = r.store.NextID()
	n.CreatedAt = time.Now().UTC()
	n.IsRead = false

	if err := r.col.Append(n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	var updated domain.Notification
	err := r.col.Mutate(func(items []domain.Notification) ([]domain.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].IsRead = true
				updated = items[i]
				return items, nil
			}
		}
		return nil, domain.ErrNotificationNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MarkAllRead flags every notification read and reports how many were still
// unread. Flipping nothing is not an error.
func (r *NotificationRepository) MarkAllRead(_ context.Context) (int, error) {
	flipped := 0
	err := r.col.Mutate(func(items []domain.Notification) ([]domain.Notification, error) {
		for i := range items {
			if !items[i].IsRead {
				items[i].IsRead = true
				flipped++
			}
		}
		return items, nil
	})
	if err != nil {
		return 0, err
	}
	return flipped, nil
}

// SettingsRepository implements ports.SettingsRepository over settings.json.
type SettingsRepository struct {
	doc *Document[domain.Settings]
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{doc: NewDocument[domain.Settings](store, "settings")}
}

func (r *SettingsRepository) Get(_ context.Context) (domain.Settings, error) {
	s, err := r.doc.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = domain.Settings{}
	}
	return s, nil
}

func (r *SettingsRepository) Put(_ context.Context, settings domain.Settings) error {
	return r.doc.Put(settings)
}
