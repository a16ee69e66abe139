package service

import (
	"context"

	"github.com/siriart/billing-admin/internal/api/metrics"
	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// SettingsService owns the single settings document: whatever object is
// posted replaces the document wholesale and is echoed back.
type SettingsService struct {
	repo    ports.SettingsRepository
	changes ports.ChangeLogger
}

func NewSettingsService(repo ports.SettingsRepository, changes ports.ChangeLogger) *SettingsService {
	return &SettingsService{repo: repo, changes: changes}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Replace(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	if settings == nil {
		settings = domain.Settings{}
	}
	if err := s.repo.Put(ctx, settings); err != nil {
		return nil, err
	}
	metrics.ResourceMutationsTotal.WithLabelValues("settings", "replace").Inc()
	s.changes.Log("settings", "Settings updated")
	return settings, nil
}
