package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aeropark/parking-system/internal/core/domain"
	"github.com/aeropark/parking-system/internal/core/ports"
)

// SettingsService maintains the single parking-wide configuration record.
type SettingsService struct {
	store  ports.KeyValueStore
	logger zerolog.Logger
}

func NewSettingsService(store ports.KeyValueStore, logger zerolog.Logger) *SettingsService {
	return &SettingsService{store: store, logger: logger}
}

func (s *SettingsService) Defaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	settings, ok, err := loadRecord[domain.Settings](ctx, s.store, keySettings)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	patch.Apply(&settings)
	if err := saveRecord(ctx, s.store, keySettings, settings); err != nil {
		return domain.Settings{}, err
	}
	s.logger.Info().Msg("settings updated")
	return settings, nil
}

func (s *SettingsService) Reset(ctx context.Context) (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := saveRecord(ctx, s.store, keySettings, defaults); err != nil {
		return domain.Settings{}, err
	}
	s.logger.Info().Msg("settings reset to defaults")
	return defaults, nil
}
