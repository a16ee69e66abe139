package service

import (
	"context"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// BillService owns the bills collection: straight appends from the
// point-of-sale client plus idempotent bulk imports from the MySQL snapshot.
type BillService struct {
	repo    ports.BillRepository
	changes ports.ChangeLogger
}

func NewBillService(repo ports.BillRepository, changes ports.ChangeLogger) *BillService {
	return &BillService{repo: repo, changes: changes}
}

func (s *BillService) List(ctx context.Context) ([]domain.Bill, error) {
	return s.repo.All(ctx)
}

func (s *BillService) Create(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	created, err := s.repo.Append(ctx, bill)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("bills", "create").Inc()
	s.changes.Logf("bills", "New bill created: (ID: %s)", created.ID)
	return created, nil
}

func (s *BillService) Import(ctx context.Context, bills []domain.Bill) (int, int, error) {
	imported, skipped, err := s.repo.Import(ctx, bills)
	if err != nil {
		return 0, 0, err
	}
	for _, b := range skipped {
		s.changes.Logf("bills", "Bill with ID %s already exists. Skipping.", b.ID)
	}
	for _, b := range imported {
		s.changes.Logf("bills", "New bill with ID %s imported.", b.ID)
	}
	if len(imported) > 0 {
		metrics.ResourceMutationsTotal.WithLabelValues("bills", "import").Inc()
	}
	return len(imported), len(skipped), nil
}

func (s *BillService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("bills", "delete").Inc()
	s.changes.Logf("bills", "Bill deleted: (ID: %s)", deleted.ID)
	return nil
}
