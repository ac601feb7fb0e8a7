package optimizer

import (
	"context"

	"seatwise/models"
)

// OptimizerService owns one table registry per site and recommends which
// table or table combination should serve an accepted booking. It never
// checks time overlaps against other bookings; occupancy arbitration is
// the caller's responsibility.
type OptimizerService interface {
	Initialize(ctx context.Context, siteID string) error
	RegisterTable(ctx context.Context, siteID string, table models.Table) error
	GetRegisteredTableIDs(ctx context.Context, siteID string) ([]string, error)
	GetRecommendations(ctx context.Context, siteID string, req models.AssignmentRequest) (*models.RecommendationResult, error)
	Stop()
}
