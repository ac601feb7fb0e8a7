package settingsRepo

import (
	"context"

	"seatwise/models"
)

// SettingsRepository stores one BookingSettings record per site.
type SettingsRepository interface {
	Get(ctx context.Context, siteID string) (*models.BookingSettings, error)
	Upsert(ctx context.Context, settings *models.BookingSettings) error
}
