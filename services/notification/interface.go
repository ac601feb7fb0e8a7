package notification

import (
	"context"

	"seatwise/models"
	"seatwise/utils"

	"go.uber.org/zap"
)

// NotificationService delivers guest-facing reminders. Transports (SMS,
// push, email) live outside this core; the default implementation records
// the reminder in the structured log for the hosting system to pick up.
type NotificationService interface {
	SendGuestReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService logs reminders via zap.
type DefaultNotificationService struct{}

func (s *DefaultNotificationService) SendGuestReminder(_ context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("guest reminder due",
		zap.String("bookingId", payload.BookingID),
		zap.String("siteId", payload.SiteID),
		zap.String("date", payload.Date),
		zap.Int("time", payload.Time),
		zap.String("guestName", payload.GuestName),
		zap.Int("partySize", payload.PartySize),
	)
	return nil
}
