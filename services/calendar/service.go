package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	calendarRepo "seatwise/database/repository/calendar"
	"seatwise/models"
	"seatwise/services/settings"
	"seatwise/services/tasks"
	"seatwise/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DefaultCalendarService routes each operation to the actor owning that
// (site, date) ledger. The repository journals accepted mutations; the
// availability algorithm itself only ever touches the actor's in-memory
// list plus one settings snapshot fetched up front.
type DefaultCalendarService struct {
	Repo         calendarRepo.CalendarRepository
	Settings     settings.SettingsService
	Queue        *asynq.Client // nil disables guest reminders
	ReminderLead time.Duration

	mu     sync.RWMutex
	actors map[string]*dayActor
}

func dayKey(siteID, date string) string {
	return siteID + "|" + date
}

func (s *DefaultCalendarService) actor(siteID, date string) (*dayActor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.actors[dayKey(siteID, date)]
	if !ok {
		return nil, fmt.Errorf("site %s date %s: %w", siteID, date, ErrDayNotInitialized)
	}
	return a, nil
}

// Initialize creates (or revives from the repository) the ledger for one
// (site, date) and spawns its owning actor. Idempotent.
func (s *DefaultCalendarService) Initialize(ctx context.Context, siteID, date string) error {
	if siteID == "" {
		return newValidationError("siteId", "must not be empty")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return newValidationError("date", "must be formatted as YYYY-MM-DD")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.actors == nil {
		s.actors = make(map[string]*dayActor)
	}
	key := dayKey(siteID, date)
	if _, ok := s.actors[key]; ok {
		return nil
	}

	day, err := s.Repo.GetDay(ctx, siteID, date)
	if err != nil {
		if !errors.Is(err, calendarRepo.ErrDayNotFound) {
			return fmt.Errorf("failed to load calendar day %s/%s: %w", siteID, date, err)
		}
		day = &models.CalendarDay{SiteID: siteID, Date: date}
		if err := s.Repo.UpsertDay(ctx, day); err != nil {
			return fmt.Errorf("failed to create calendar day %s/%s: %w", siteID, date, err)
		}
	}

	s.actors[key] = newDayActor(*day)
	return nil
}

// AddBooking appends a booking to the day ledger. The booking is immutable
// afterwards except for its status. An accepted booking is journaled to
// the repository and, when a queue is configured, schedules a guest
// reminder.
func (s *DefaultCalendarService) AddBooking(ctx context.Context, siteID, date string, booking models.Booking) (*models.Booking, error) {
	if booking.PartySize < 1 {
		return nil, newValidationError("partySize", "must be at least 1")
	}
	if booking.Time < 0 || booking.Time >= 24*60 {
		return nil, newValidationError("time", "must be within 0..1439 minutes")
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	if !models.KnownBookingStatus(booking.Status) {
		return nil, newValidationError("status", fmt.Sprintf("unknown status %q", booking.Status))
	}
	if booking.Source == "" {
		booking.Source = models.SourceStaff
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	a, err := s.actor(siteID, date)
	if err != nil {
		return nil, err
	}

	var dupErr error
	if err := a.do(ctx, func(d *models.CalendarDay) {
		for _, b := range d.Bookings {
			if b.ID == booking.ID {
				dupErr = newValidationError("bookingId", fmt.Sprintf("booking %s already exists", booking.ID))
				return
			}
		}
		d.Bookings = append(d.Bookings, booking)
	}); err != nil {
		return nil, err
	}
	if dupErr != nil {
		return nil, dupErr
	}

	logger := utils.GetLogger()
	if err := s.Repo.AppendBooking(ctx, siteID, date, booking); err != nil {
		logger.Warn("failed to journal booking",
			zap.String("siteId", siteID), zap.String("date", date),
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
	s.enqueueReminder(siteID, date, booking)
	utils.BookingsRecorded.Inc()

	return &booking, nil
}

// UpdateBookingStatus is the only mutation a recorded booking supports.
func (s *DefaultCalendarService) UpdateBookingStatus(ctx context.Context, siteID, date, bookingID, status string) error {
	if !models.KnownBookingStatus(status) {
		return newValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	a, err := s.actor(siteID, date)
	if err != nil {
		return err
	}

	var found bool
	if err := a.do(ctx, func(d *models.CalendarDay) {
		for i := range d.Bookings {
			if d.Bookings[i].ID == bookingID {
				d.Bookings[i].Status = status
				found = true
				return
			}
		}
	}); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("booking %s not found on %s/%s", bookingID, siteID, date)
	}

	if err := s.Repo.SetBookingStatus(ctx, siteID, date, bookingID, status); err != nil {
		utils.GetLogger().Warn("failed to journal booking status",
			zap.String("siteId", siteID), zap.String("date", date),
			zap.String("bookingId", bookingID), zap.Error(err))
	}
	return nil
}

// GetBookings returns a snapshot of the day ledger.
func (s *DefaultCalendarService) GetBookings(ctx context.Context, siteID, date string) ([]models.Booking, error) {
	a, err := s.actor(siteID, date)
	if err != nil {
		return nil, err
	}
	var snapshot []models.Booking
	if err := a.do(ctx, func(d *models.CalendarDay) {
		snapshot = make([]models.Booking, len(d.Bookings))
		copy(snapshot, d.Bookings)
	}); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetAvailability answers which slots can take the requested party on this
// day. It fetches one settings snapshot, then evaluates every rule inside
// the owning actor so the booking list cannot shift mid-computation.
// Unavailable slots come back flagged; an all-unavailable day is a normal
// result, not an error.
func (s *DefaultCalendarService) GetAvailability(ctx context.Context, siteID, date string, req models.AvailabilityRequest) ([]models.AvailabilitySlot, error) {
	if req.PartySize < 1 {
		return nil, newValidationError("partySize", "must be at least 1")
	}
	if req.Source == "" {
		req.Source = models.SourceStaff
	}
	if req.CurrentTime.IsZero() {
		req.CurrentTime = time.Now()
	}

	a, err := s.actor(siteID, date)
	if err != nil {
		return nil, err
	}

	cfg, err := s.Settings.Get(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings snapshot: %w", err)
	}

	dayStart, err := time.ParseInLocation(dateLayout, date, req.CurrentTime.Location())
	if err != nil {
		return nil, newValidationError("date", "must be formatted as YYYY-MM-DD")
	}

	var slots []models.AvailabilitySlot
	if err := a.do(ctx, func(d *models.CalendarDay) {
		slots = computeAvailability(*cfg, dayStart, d.Bookings, req)
	}); err != nil {
		return nil, err
	}
	utils.AvailabilityQueries.Inc()
	return slots, nil
}

// Stop drains every day actor. Called on shutdown.
func (s *DefaultCalendarService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.actors {
		a.stop()
	}
	s.actors = nil
}

func (s *DefaultCalendarService) enqueueReminder(siteID, date string, booking models.Booking) {
	if s.Queue == nil || booking.Status == models.BookingStatusCancelled {
		return
	}
	logger := utils.GetLogger()
	dayStart, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return
	}
	fireAt := dayStart.Add(time.Duration(booking.Time)*time.Minute - s.ReminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		SiteID:    siteID,
		Date:      date,
		Time:      booking.Time,
		GuestName: booking.GuestName,
		PartySize: booking.PartySize,
	}
	task, opts, err := tasks.NewGuestReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build guest reminder task",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue guest reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
