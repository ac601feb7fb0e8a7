package calendarRepo

import (
	"context"

	"seatwise/models"
)

// CalendarRepository journals calendar-day ledgers, one document per
// (site, date). The availability algorithm never reads through it
// mid-computation; it only hydrates day actors and records accepted
// mutations.
type CalendarRepository interface {
	GetDay(ctx context.Context, siteID, date string) (*models.CalendarDay, error)
	UpsertDay(ctx context.Context, day *models.CalendarDay) error
	AppendBooking(ctx context.Context, siteID, date string, booking models.Booking) error
	SetBookingStatus(ctx context.Context, siteID, date, bookingID, status string) error
}
