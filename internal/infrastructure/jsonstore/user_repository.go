package jsonstore

import (
	"context"
	"strings"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// UserRepository implements ports.UserRepository over users.json. Email is
// the lookup key and matches case-insensitively.
type UserRepository struct {
	store *Store
	col   *Collection[domain.User]
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{
		store: store,
		col:   NewCollection[domain.User](store, "users"),
	}
}

func (r *UserRepository) All(_ context.Context) ([]domain.User, error) {
	return r.col.All()
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok, err := r.col.Find(func(u domain.User) bool { return u.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok, err := r.col.Find(func(u domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// Create persists the user, rejecting duplicate emails inside the write lock
// so two concurrent creates cannot both pass the uniqueness check.
func (r *UserRepository) Create(_ context.Context, user domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	user.ID = r.store.NextID()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.col.Mutate(func(items []domain.User) ([]domain.User, error) {
		for _, existing := range items {
			if strings.EqualFold(existing.Email, user.Email) {
				return nil, domain.ErrEmailExists
			}
		}
		return append(items, user), nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(_ context.Context, id string, apply func(*domain.User)) (*domain.User, error) {
	var updated domain.User
	err := r.col.Mutate(func(items []domain.User) ([]domain.User, error) {
		for i := range items {
			if items[i].ID == id {
				apply(&items[i])
				items[i].UpdatedAt = time.Now().UTC()
				updated = items[i]
				return items, nil
			}
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (*domain.User, error) {
	var deleted domain.User
	err := r.col.Mutate(func(items []domain.User) ([]domain.User, error) {
		for i := range items {
			if items[i].ID == id {
				deleted = items[i]
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
