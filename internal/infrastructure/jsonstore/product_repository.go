package jsonstore

import (
	"context"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// ProductRepository implements ports.ProductRepository over products.json.
type ProductRepository struct {
	store *Store
	col   *Collection[domain.Product]
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{
		store: store,
		col:   NewCollection[domain.Product](store, "products"),
	}
}

func (r *ProductRepository) All(_ context.Context) ([]domain.Product, error) {
	return r.col.All()
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok, err := r.col.Find(func(p domain.Product) bool { return p.ID == id })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *ProductRepository) Create(_ context.Context, product domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	product.ID = r.store.NextID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := r.col.Append(product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(_ context.Context, id string, apply func(*domain.Product)) (*domain.Product, error) {
	var updated domain.Product
	err := r.col.Mutate(func(items []domain.Product) ([]domain.Product, error) {
		for i := range items {
			if items[i].ID == id {
				apply(&items[i])
				items[i].UpdatedAt = time.Now().UTC()
				updated = items[i]
				return items, nil
			}
		}
		return nil, domain.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) (*domain.Product, error) {
	var deleted domain.Product
	err := r.col.Mutate(func(items []domain.Product) ([]domain.Product, error) {
		for i := range items {
			if items[i].ID == id {
				deleted = items[i]
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
