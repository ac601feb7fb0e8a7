package settings

import (
	"context"

	"seatwise/models"
)

// SettingsService manages the per-site reservation rule record. It is
// read-mostly: availability computations fetch one snapshot up front and
// never see a mid-flight update.
type SettingsService interface {
	Initialize(ctx context.Context, siteID string) (*models.BookingSettings, error)
	Update(ctx context.Context, siteID string, patch models.SettingsPatch) (*models.BookingSettings, error)
	Get(ctx context.Context, siteID string) (*models.BookingSettings, error)
}
