package jsonstore

import (
	"context"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// BillRepository implements ports.BillRepository over bills.json. Bills
// arrive fully formed from the point-of-sale client or the MySQL snapshot;
// only missing ids are assigned here.
type BillRepository struct {
	store *Store
	col   *Collection[domain.Bill]
}

func NewBillRepository(store *Store) *BillRepository {
	return &BillRepository{
		store: store,
		col:   NewCollection[domain.Bill](store, "bills"),
	}
}

func (r *BillRepository) All(_ context.Context) ([]domain.Bill, error) {
	return r.col.All()
}

func (r *BillRepository) Append(_ context.Context, bill domain.Bill) (*domain.Bill, error) {
	if bill.ID == "" {
		bill.ID = r.store.NextID()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	if err := r.col.Append(bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// Import appends bills whose ids are not present yet. The existence check
// and the append run inside one write lock, so a bill cannot slip in twice.
func (r *BillRepository) Import(_ context.Context, bills []domain.Bill) (imported, skipped []domain.Bill, err error) {
	err = r.col.Mutate(func(items []domain.Bill) ([]domain.Bill, error) {
		existing := make(map[string]struct{}, len(items))
		for _, b := range items {
			existing[b.ID] = struct{}{}
		}
		for _, b := range bills {
			if _, ok := existing[b.ID]; ok {
				skipped = append(skipped, b)
				continue
			}
			existing[b.ID] = struct{}{}
			imported = append(imported, b)
			items = append(items, b)
		}
		return items, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return imported, skipped, nil
}

func (r *BillRepository) Delete(_ context.Context, id string) (*domain.Bill, error) {
	var deleted domain.Bill
	err := r.col.Mutate(func(items []domain.Bill) ([]domain.Bill, error) {
		for i := range items {
			if items[i].ID == id {
				deleted = items[i]
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrBillNotFound
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
