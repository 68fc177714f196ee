package ports

import (
	"context"

	"github.com/aeropark/parking-system/internal/core/domain"
)

// SettingsService maintains the single parking-wide configuration record.
type SettingsService interface {
	Defaults() domain.Settings
	// Get returns the stored settings, or the defaults when none are stored.
	Get(ctx context.Context) (domain.Settings, error)
	// Update merges patch into the current settings and returns the result.
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, error)
	// Reset overwrites the stored settings with the defaults.
	Reset(ctx context.Context) (domain.Settings, error)
}
