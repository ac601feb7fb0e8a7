package tablesRepo

import (
	"context"

	"seatwise/models"
)

// TableRepository stores one document per registered table. Used to
// hydrate a site's optimizer on startup and to journal registrations.
type TableRepository interface {
	ListBySite(ctx context.Context, siteID string) ([]models.Table, error)
	Upsert(ctx context.Context, table *models.Table) error
}
