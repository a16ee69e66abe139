package service

import (
	"context"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// NotificationService owns the notification feed shown in the admin UI.
type NotificationService struct {
	repo    ports.NotificationRepository
	changes ports.ChangeLogger
}

func NewNotificationService(repo ports.NotificationRepository, changes ports.ChangeLogger) *NotificationService {
	return &NotificationService{repo: repo, changes: changes}
}

// List returns up to limit notifications, newest additions last as stored.
// The unread and total counts always describe the whole feed, before the
// unreadOnly and limit filters are applied.
func (s *NotificationService) List(ctx context.Context, unreadOnly bool, limit int) ([]domain.Notification, int, int, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, 0, 0, err
	}

	unread := 0
	for _, n := range all {
		if !n.IsRead {
			unread++
		}
	}

	filtered := all
	if unreadOnly {
		filtered = make([]domain.Notification, 0, unread)
		for _, n := range all {
			if !n.IsRead {
				filtered = append(filtered, n)
			}
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, unread, len(all), nil
}

func (s *NotificationService) Get(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NotificationService) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("notifications", "create").Inc()
	s.changes.Logf("notifications", "New notification created: %s (ID: %s)", created.Title, created.ID)
	return created, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("notifications", "update").Inc()
	return updated, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	flipped, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return err
	}
	if flipped > 0 {
		metrics.ResourceMutationsTotal.WithLabelValues("notifications", "update").Inc()
		s.changes.Logf("notifications", "All notifications marked as read (%d)", flipped)
	}
	return nil
}
