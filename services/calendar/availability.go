package calendar

import (
	"time"

	"seatwise/models"
)

// computeAvailability runs the slot rules against a settings snapshot and
// the day's booking list. dayStart is local midnight of the queried date.
// The result carries one slot per interval boundary between open and close,
// each flagged available only when every active rule passes.
func computeAvailability(cfg models.BookingSettings, dayStart time.Time, bookings []models.Booking, req models.AvailabilityRequest) []models.AvailabilitySlot {
	staff := req.Source == models.SourceStaff

	// Day-scoped gates are computed once; when one trips, every slot is
	// unavailable for this caller.
	dayBlocked := false
	if !staff {
		if quota, ok := cfg.QuotaFor(req.Source); ok {
			sourceCovers := 0
			for _, b := range bookings {
				if b.Source == req.Source && b.Status != models.BookingStatusCancelled {
					sourceCovers += b.PartySize
				}
			}
			if sourceCovers+req.PartySize > quota.MaxCoversPerDay {
				dayBlocked = true
			}
		}
	}
	if !staff && cfg.MaxBookingsPerSlot > 0 {
		slotsInDay := (cfg.CloseTime - cfg.OpenTime) / cfg.SlotInterval
		capacity := cfg.MaxBookingsPerSlot * slotsInDay
		reserved := float64(capacity) * float64(cfg.WalkInHoldbackPercent) / 100
		allowed := float64(capacity) - reserved
		bookedCovers := 0
		for _, b := range bookings {
			if b.Status != models.BookingStatusCancelled {
				bookedCovers += b.PartySize
			}
		}
		if float64(bookedCovers+req.PartySize) > allowed {
			dayBlocked = true
		}
	}

	leadCutoff := req.CurrentTime.Add(time.Duration(cfg.MinLeadTimeHours * float64(time.Hour)))

	var slots []models.AvailabilitySlot
	for t := cfg.OpenTime; t < cfg.CloseTime; t += cfg.SlotInterval {
		windowEnd := cfg.CloseTime
		offset := cfg.LastSeatingOffset
		duration := cfg.DefaultDuration
		if period, ok := cfg.PeriodFor(t); ok {
			windowEnd = period.EndTime
			duration = period.DefaultDuration
			if period.LastSeatingOffset != nil {
				offset = *period.LastSeatingOffset
			}
		}

		available := !dayBlocked

		// Last-seating cutoff; an offset of zero disables the rule.
		if available && offset > 0 && t >= windowEnd-offset {
			available = false
		}

		// Minimum lead time; the staff channel books right up to service.
		if available && !staff {
			slotAbs := dayStart.Add(time.Duration(t) * time.Minute)
			if slotAbs.Before(leadCutoff) {
				available = false
			}
		}

		// Pacing over the sliding window starting at this slot.
		if available && cfg.MaxCoversPerInterval > 0 {
			windowClose := t + cfg.PacingWindowSlots*cfg.SlotInterval
			covers := 0
			for _, b := range bookings {
				if b.Time >= t && b.Time < windowClose && countsTowardPacing(b.Status) {
					covers += b.PartySize
				}
			}
			if covers+req.PartySize > cfg.MaxCoversPerInterval {
				available = false
			}
		}

		slots = append(slots, models.AvailabilitySlot{
			Time:              t,
			IsAvailable:       available,
			EstimatedDuration: duration,
		})
	}
	return slots
}

// countsTowardPacing includes seated parties: they hold their covers for
// kitchen load just like confirmed ones. Pending and cancelled do not.
func countsTowardPacing(status string) bool {
	return status == models.BookingStatusConfirmed || status == models.BookingStatusSeated
}
