package calendar

import (
	"context"

	"seatwise/models"
)

// CalendarService owns the per-(site, date) booking ledgers and answers
// availability queries against them. Every operation on one day is
// serialized through that day's owning actor; different days run fully in
// parallel.
type CalendarService interface {
	Initialize(ctx context.Context, siteID, date string) error
	AddBooking(ctx context.Context, siteID, date string, booking models.Booking) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, siteID, date, bookingID, status string) error
	GetBookings(ctx context.Context, siteID, date string) ([]models.Booking, error)
	GetAvailability(ctx context.Context, siteID, date string, req models.AvailabilityRequest) ([]models.AvailabilitySlot, error)
	Stop()
}
