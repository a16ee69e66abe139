package service

import (
	"context"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// StoreService implements store CRUD with change logging. Legacy id
// translation lives in the repository.
type StoreService struct {
	repo    ports.StoreRepository
	changes ports.ChangeLogger
}

func NewStoreService(repo ports.StoreRepository, changes ports.ChangeLogger) *StoreService {
	return &StoreService{repo: repo, changes: changes}
}

func (s *StoreService) List(ctx context.Context) ([]domain.Store, error) {
	return s.repo.All(ctx)
}

func (s *StoreService) Get(ctx context.Context, id string) (*domain.Store, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StoreService) Create(ctx context.Context, store domain.Store) (*domain.Store, error) {
	created, err := s.repo.Create(ctx, store)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("stores", "create").Inc()
	s.changes.Logf("stores", "New store created: %s (ID: %s)", created.Name, created.ID)
	return created, nil
}

func (s *StoreService) Update(ctx context.Context, id string, apply func(*domain.Store)) (*domain.Store, error) {
	updated, err := s.repo.Update(ctx, id, apply)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("stores", "update").Inc()
	s.changes.Logf("stores", "Store updated: %s (ID: %s)", updated.Name, updated.ID)
	return updated, nil
}

func (s *StoreService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("stores", "delete").Inc()
	s.changes.Logf("stores", "Store deleted: %s (ID: %s)", deleted.Name, deleted.ID)
	return nil
}
