package calendar

import (
	"testing"
	"time"

	"seatwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSettings() models.BookingSettings {
	return models.BookingSettings{
		SiteID:            "site-1",
		OpenTime:          18 * 60, // 18:00
		CloseTime:         22 * 60, // 22:00
		SlotInterval:      30,
		PacingWindowSlots: 1,
		DefaultDuration:   90,
	}
}

func confirmedBooking(minute, covers int, source string) models.Booking {
	return models.Booking{
		ID:        "b",
		Time:      minute,
		PartySize: covers,
		Source:    source,
		Status:    models.BookingStatusConfirmed,
	}
}

func slotByTime(t *testing.T, slots []models.AvailabilitySlot, minute int) models.AvailabilitySlot {
	t.Helper()
	for _, s := range slots {
		if s.Time == minute {
			return s
		}
	}
	t.Fatalf("no slot at minute %d", minute)
	return models.AvailabilitySlot{}
}

func dayAt(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)
	return d
}

func TestLastSeatingCutoff(t *testing.T) {
	cfg := baseSettings()
	cfg.LastSeatingOffset = 90 // cutoff at 20:30

	day := dayAt(t, "2025-06-01")
	req := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, nil, req)
	require.Len(t, slots, 8)

	for _, s := range slots {
		if s.Time < 20*60+30 {
			assert.True(t, s.IsAvailable, "slot %d should be before the cutoff", s.Time)
		} else {
			assert.False(t, s.IsAvailable, "slot %d is at or past the cutoff", s.Time)
		}
	}
}

func TestLastSeatingOffsetZeroDisablesCutoff(t *testing.T) {
	cfg := baseSettings()
	cfg.LastSeatingOffset = 0

	day := dayAt(t, "2025-06-01")
	req := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, nil, req)
	for _, s := range slots {
		assert.True(t, s.IsAvailable, "slot %d should be open up to close", s.Time)
	}
}

func TestMinimumLeadTime(t *testing.T) {
	cfg := baseSettings()
	cfg.MinLeadTimeHours = 2

	day := dayAt(t, "2025-06-01")
	current := day.Add(17 * time.Hour) // 17:00, cutoff 19:00
	req := models.AvailabilityRequest{PartySize: 2, Source: "web", CurrentTime: current}

	slots := computeAvailability(cfg, day, nil, req)
	assert.False(t, slotByTime(t, slots, 18*60).IsAvailable)
	assert.False(t, slotByTime(t, slots, 18*60+30).IsAvailable)
	assert.True(t, slotByTime(t, slots, 19*60).IsAvailable)
	assert.True(t, slotByTime(t, slots, 19*60+30).IsAvailable)
}

func TestLeadTimeSkippedForStaff(t *testing.T) {
	cfg := baseSettings()
	cfg.MinLeadTimeHours = 2

	day := dayAt(t, "2025-06-01")
	current := day.Add(21 * time.Hour) // almost at close
	req := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: current}

	slots := computeAvailability(cfg, day, nil, req)
	for _, s := range slots {
		assert.True(t, s.IsAvailable, "staff slot %d should ignore lead time", s.Time)
	}
}

func TestPacingSingleSlotWindow(t *testing.T) {
	cfg := baseSettings()
	cfg.SlotInterval = 15
	cfg.MaxCoversPerInterval = 20

	day := dayAt(t, "2025-06-01")
	bookings := []models.Booking{confirmedBooking(19*60, 18, models.SourceStaff)}
	req := models.AvailabilityRequest{PartySize: 4, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, bookings, req)
	assert.False(t, slotByTime(t, slots, 19*60).IsAvailable, "18 existing + 4 exceeds 20")
	assert.True(t, slotByTime(t, slots, 18*60).IsAvailable, "empty slot stays open")
}

func TestPacingSlidingWindow(t *testing.T) {
	cfg := baseSettings()
	cfg.SlotInterval = 15
	cfg.PacingWindowSlots = 2 // 30-minute window
	cfg.MaxCoversPerInterval = 30

	day := dayAt(t, "2025-06-01")
	bookings := []models.Booking{
		confirmedBooking(19*60, 20, models.SourceStaff),
		confirmedBooking(19*60+15, 8, models.SourceStaff),
	}
	req := models.AvailabilityRequest{PartySize: 4, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, bookings, req)
	// Window [19:00, 19:30) sees both parties: 20+8+4 > 30.
	assert.False(t, slotByTime(t, slots, 19*60).IsAvailable)
	// Window [19:30, 20:00) sees neither.
	assert.True(t, slotByTime(t, slots, 19*60+30).IsAvailable)
}

func TestPacingIgnoresCancelledAndPending(t *testing.T) {
	cfg := baseSettings()
	cfg.MaxCoversPerInterval = 10

	cancelled := confirmedBooking(19*60, 9, models.SourceStaff)
	cancelled.Status = models.BookingStatusCancelled
	pending := confirmedBooking(19*60, 9, models.SourceStaff)
	pending.Status = models.BookingStatusPending

	day := dayAt(t, "2025-06-01")
	req := models.AvailabilityRequest{PartySize: 4, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, []models.Booking{cancelled, pending}, req)
	assert.True(t, slotByTime(t, slots, 19*60).IsAvailable)
}

func TestChannelQuotaBlocksWholeDay(t *testing.T) {
	cfg := baseSettings()
	cfg.ChannelQuotas = []models.ChannelQuota{{Source: "opentable", MaxCoversPerDay: 20}}

	day := dayAt(t, "2025-06-01")
	bookings := []models.Booking{confirmedBooking(19*60, 20, "opentable")}

	quotaReq := models.AvailabilityRequest{PartySize: 2, Source: "opentable", CurrentTime: day}
	slots := computeAvailability(cfg, day, bookings, quotaReq)
	for _, s := range slots {
		assert.False(t, s.IsAvailable, "quota-exhausted channel should see no slot at %d", s.Time)
	}

	staffReq := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: day}
	slots = computeAvailability(cfg, day, bookings, staffReq)
	for _, s := range slots {
		assert.True(t, s.IsAvailable, "staff should be unaffected by channel quotas at %d", s.Time)
	}
}

func TestWalkInHoldback(t *testing.T) {
	cfg := baseSettings() // 8 slots of 30 minutes
	cfg.MaxBookingsPerSlot = 10
	cfg.WalkInHoldbackPercent = 20 // capacity 80, reserved 16, allowed 64

	day := dayAt(t, "2025-06-01")
	bookings := []models.Booking{
		confirmedBooking(18*60, 32, "web"),
		confirmedBooking(20*60, 32, "web"),
	}

	webReq := models.AvailabilityRequest{PartySize: 1, Source: "web", CurrentTime: day}
	slots := computeAvailability(cfg, day, bookings, webReq)
	for _, s := range slots {
		assert.False(t, s.IsAvailable, "advance bookings past the holdback line should be refused at %d", s.Time)
	}

	staffReq := models.AvailabilityRequest{PartySize: 1, Source: models.SourceStaff, CurrentTime: day}
	slots = computeAvailability(cfg, day, bookings, staffReq)
	for _, s := range slots {
		assert.True(t, s.IsAvailable, "staff bypasses the holdback at %d", s.Time)
	}
}

func TestHoldbackDisabledWhenMaxBookingsPerSlotZero(t *testing.T) {
	cfg := baseSettings()
	cfg.MaxBookingsPerSlot = 0
	cfg.WalkInHoldbackPercent = 50

	day := dayAt(t, "2025-06-01")
	bookings := []models.Booking{confirmedBooking(18*60, 500, "web")}
	req := models.AvailabilityRequest{PartySize: 2, Source: "web", CurrentTime: day}

	slots := computeAvailability(cfg, day, bookings, req)
	assert.True(t, slotByTime(t, slots, 19*60).IsAvailable)
}

func TestMealPeriodDurations(t *testing.T) {
	cfg := baseSettings()
	cfg.OpenTime = 11 * 60
	cfg.CloseTime = 22 * 60
	cfg.SlotInterval = 60
	cfg.MealPeriods = []models.MealPeriod{
		{Name: "Lunch", StartTime: 11 * 60, EndTime: 15 * 60, DefaultDuration: 60},
		{Name: "Dinner", StartTime: 17 * 60, EndTime: 22 * 60, DefaultDuration: 120},
	}

	day := dayAt(t, "2025-06-01")
	req := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, nil, req)
	assert.Equal(t, 60, slotByTime(t, slots, 12*60).EstimatedDuration)
	assert.Equal(t, 120, slotByTime(t, slots, 19*60).EstimatedDuration)
	// The 16:00 gap slot falls back to the site default duration.
	assert.Equal(t, 90, slotByTime(t, slots, 16*60).EstimatedDuration)
}

func TestMealPeriodLastSeatingOverride(t *testing.T) {
	cfg := baseSettings()
	cfg.OpenTime = 17 * 60
	cfg.CloseTime = 22 * 60
	cfg.LastSeatingOffset = 30
	periodOffset := 120
	cfg.MealPeriods = []models.MealPeriod{
		{Name: "Dinner", StartTime: 17 * 60, EndTime: 22 * 60, DefaultDuration: 120, LastSeatingOffset: &periodOffset},
	}

	day := dayAt(t, "2025-06-01")
	req := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, nil, req)
	// The period's own offset (120) wins over the site offset (30):
	// cutoff at 20:00.
	assert.True(t, slotByTime(t, slots, 19*60+30).IsAvailable)
	assert.False(t, slotByTime(t, slots, 20*60).IsAvailable)
}

func TestSlotsOrderedAndFlaggedNotOmitted(t *testing.T) {
	cfg := baseSettings()
	cfg.LastSeatingOffset = 90

	day := dayAt(t, "2025-06-01")
	req := models.AvailabilityRequest{PartySize: 2, Source: models.SourceStaff, CurrentTime: day}

	slots := computeAvailability(cfg, day, nil, req)
	require.Len(t, slots, 8, "unavailable slots must still be returned")
	for i := 1; i < len(slots); i++ {
		assert.Greater(t, slots[i].Time, slots[i-1].Time)
	}
}
