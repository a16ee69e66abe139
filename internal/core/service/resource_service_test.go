package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// memChangeLog records entries per resource so tests can assert on the trail.
type memChangeLog struct {
	entries map[string][]string
}

func newMemChangeLog() *memChangeLog {
	return &memChangeLog{entries: map[string][]string{}}
}

func (m *memChangeLog) Log(resource, message string) {
	m.entries[resource] = append(m.entries[resource], message)
}

func (m *memChangeLog) Logf(resource, format string, args ...any) {
	m.Log(resource, fmt.Sprintf(format, args...))
}

type stubProductRepo struct {
	products []domain.Product
}

func (r *stubProductRepo) All(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()
	p.ID = fmt.Sprintf("%d", len(r.products)+1)
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, p)
	return &p, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, apply func(*domain.Product)) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			apply(&r.products[i])
			clone := r.products[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			deleted := r.products[i]
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func TestProductService_CreateLogsChange(t *testing.T) {
	changes := newMemChangeLog()
	svc := NewProductService(&stubProductRepo{}, changes)

	created, err := svc.Create(context.Background(), domain.Product{Name: "Canvas", Price: 250})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	if len(changes.entries["products"]) != 1 {
		t.Fatalf("expected one changelog entry, got %v", changes.entries)
	}
	if !strings.Contains(changes.entries["products"][0], "Canvas") {
		t.Fatalf("changelog entry missing product name: %q", changes.entries["products"][0])
	}
}

func TestProductService_DeleteLogsChange(t *testing.T) {
	changes := newMemChangeLog()
	repo := &stubProductRepo{}
	svc := NewProductService(repo, changes)

	created, _ := svc.Create(context.Background(), domain.Product{Name: "Canvas"})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.products) != 0 {
		t.Fatalf("expected product removed")
	}
	last := changes.entries["products"][len(changes.entries["products"])-1]
	if !strings.Contains(last, "deleted") {
		t.Fatalf("expected delete entry, got %q", last)
	}
}

type stubNotificationRepo struct {
	items []domain.Notification
}

func (r *stubNotificationRepo) All(_ context.Context) ([]domain.Notification, error) {
	return append([]domain.Notification(nil), r.items...), nil
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	for _, n := range r.items {
		if n.ID == id {
			clone := n
			return &clone, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) Create(_ context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = fmt.Sprintf("%d", len(r.items)+1)
	r.items = append(r.items, n)
	return &n, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].IsRead = true
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotificationRepo) MarkAllRead(_ context.Context) (int, error) {
	flipped := 0
	for i := range r.items {
		if !r.items[i].IsRead {
			r.items[i].IsRead = true
			flipped++
		}
	}
	return flipped, nil
}

func TestNotificationService_ListFilters(t *testing.T) {
	repo := &stubNotificationRepo{items: []domain.Notification{
		{ID: "1", IsRead: true},
		{ID: "2"},
		{ID: "3"},
		{ID: "4"},
	}}
	svc := NewNotificationService(repo, newMemChangeLog())

	all, unread, total, err := svc.List(context.Background(), false, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 || unread != 3 || total != 4 {
		t.Fatalf("expected 4 items / 3 unread / 4 total, got %d / %d / %d", len(all), unread, total)
	}

	onlyUnread, unread, total, err := svc.List(context.Background(), true, 2)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if len(onlyUnread) != 2 || unread != 3 {
		t.Fatalf("expected 2 items / 3 unread, got %d / %d", len(onlyUnread), unread)
	}
	if total != 4 {
		t.Fatalf("total must describe the whole feed regardless of filters, got %d", total)
	}
	for _, n := range onlyUnread {
		if n.IsRead {
			t.Fatalf("read notification leaked into unread-only list: %+v", n)
		}
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	changes := newMemChangeLog()
	repo := &stubNotificationRepo{items: []domain.Notification{
		{ID: "1", IsRead: true},
		{ID: "2"},
		{ID: "3"},
	}}
	svc := NewNotificationService(repo, changes)

	if err := svc.MarkAllRead(context.Background()); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	for _, n := range repo.items {
		if !n.IsRead {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
	if len(changes.entries["notifications"]) != 1 {
		t.Fatalf("expected one changelog entry, got %v", changes.entries)
	}

	// Already-read feed: nothing flipped, nothing logged.
	if err := svc.MarkAllRead(context.Background()); err != nil {
		t.Fatalf("mark all read again: %v", err)
	}
	if len(changes.entries["notifications"]) != 1 {
		t.Fatalf("no-op run must not log, got %v", changes.entries)
	}
}
