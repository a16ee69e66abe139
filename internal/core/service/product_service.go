package service

import (
	"context"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// ProductService implements product CRUD with change logging.
type ProductService struct {
	repo    ports.ProductRepository
	changes ports.ChangeLogger
}

func NewProductService(repo ports.ProductRepository, changes ports.ChangeLogger) *ProductService {
	return &ProductService{repo: repo, changes: changes}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.All(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("products", "create").Inc()
	s.changes.Logf("products", "New product created: %s (ID: %s)", created.Name, created.ID)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, apply func(*domain.Product)) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, apply)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("products", "update").Inc()
	s.changes.Logf("products", "Product updated: %s (ID: %s)", updated.Name, updated.ID)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("products", "delete").Inc()
	s.changes.Logf("products", "Product deleted: %s (ID: %s)", deleted.Name, deleted.ID)
	return nil
}
