package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// SettingsService manages the singleton system settings row.
type SettingsService struct {
	settings repository.SettingsRepository
}

// NewSettingsService builds the service.
func NewSettingsService(settings repository.SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// Get returns the settings row, creating it with defaults on first access.
func (s *SettingsService) Get(ctx context.Context, actorID string) (*domain.SystemSetting, error) {
	setting, err := s.settings.GetSettings(ctx)
	if err == nil {
		return setting, nil
	}
	if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	setting = &domain.SystemSetting{AutoBackup: true}
	if actorID != "" {
		setting.CreatedBy = &actorID
	}
	if err := s.settings.CreateSettings(ctx, setting); err != nil {
		return nil, apperrors.MapError(err)
	}
	return setting, nil
}

// Update applies a partial settings change, creating the row first when
// missing.
func (s *SettingsService) Update(ctx context.Context, actorID string, update repository.SystemSettingUpdate) (*domain.SystemSetting, error) {
	current, err := s.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	updated, err := s.settings.UpdateSettings(ctx, current.ID, update)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}
