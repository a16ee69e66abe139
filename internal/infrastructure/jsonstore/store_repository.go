package jsonstore

import (
	"context"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/pkg/storeid"
)

// StoreRepository implements ports.StoreRepository over stores.json.
// Store ids carry the "STR-" prefix; lookups first translate legacy
// "store_<n>" ids to the standard format.
type StoreRepository struct {
	store *Store
	col   *Collection[domain.Store]
}

func NewStoreRepository(store *Store) *StoreRepository {
	return &StoreRepository{
		store: store,
		col:   NewCollection[domain.Store](store, "stores"),
	}
}

func (r *StoreRepository) All(_ context.Context) ([]domain.Store, error) {
	return r.col.All()
}

func (r *StoreRepository) FindByID(_ context.Context, id string) (*domain.Store, error) {
	id = storeid.ToStandard(id)
	s, ok, err := r.col.Find(func(s domain.Store) bool { return s.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return &s, nil
}

func (r *StoreRepository) Create(_ context.Context, store domain.Store) (*domain.Store, error) {
	now := time.Now().UTC()
	store.ID = "STR-" + r.store.NextID()
	store.CreatedAt = now
	store.UpdatedAt = now

	if err := r.col.Append(store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) Update(_ context.Context, id string, apply func(*domain.Store)) (*domain.Store, error) {
	id = storeid.ToStandard(id)
	var updated domain.Store
	err := r.col.Mutate(func(items []domain.Store) ([]domain.Store, error) {
		for i := range items {
			if items[i].ID == id {
				apply(&items[i])
				items[i].UpdatedAt = time.Now().UTC()
				updated = items[i]
				return items, nil
			}
		}
		return nil, domain.ErrStoreNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *StoreRepository) Delete(_ context.Context, id string) (*domain.Store, error) {
	id = storeid.ToStandard(id)
	var deleted domain.Store
	err := r.col.Mutate(func(items []domain.Store) ([]domain.Store, error) {
		for i := range items {
			if items[i].ID == id {
				deleted = items[i]
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrStoreNotFound
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
