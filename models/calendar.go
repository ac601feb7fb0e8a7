package models

import "time"

// Booking statuses. A booking is immutable after creation except for its
// status.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusSeated    = "seated"
	BookingStatusCancelled = "cancelled"
)

// SourceStaff is the staff/direct booking channel. It bypasses lead-time,
// quota and holdback checks and is the default when a caller supplies no
// source.
const SourceStaff = "staff"

// KnownBookingStatus reports whether s is one of the accepted statuses.
func KnownBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusSeated, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation recorded on a calendar day.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	Label     string    `bson:"label" json:"label"`                   // internal reference shown on the floor sheet
	Time      int       `bson:"time" json:"time"`                     // slot start, minutes from midnight (e.g., 1140 for 7:00 PM)
	PartySize int       `bson:"partySize" json:"partySize"`           // covers
	GuestName string    `bson:"guestName" json:"guestName"`
	Source    string    `bson:"source" json:"source"`                 // booking channel, e.g., "staff", "web", "opentable"
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CalendarDay is the booking ledger for one site on one date.
type CalendarDay struct {
	SiteID   string    `bson:"siteId" json:"siteId"`
	Date     string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Bookings []Booking `bson:"bookings" json:"bookings"`
}

// AvailabilityRequest asks which slots can take a party on a given day.
type AvailabilityRequest struct {
	PartySize   int       `json:"partySize"`
	Source      string    `json:"source"`      // empty defaults to staff
	CurrentTime time.Time `json:"currentTime"` // observation time for the lead-time rule
}

// AvailabilitySlot is one bookable time point with its availability verdict.
// Unavailable slots are returned flagged rather than omitted so callers can
// render the full grid.
type AvailabilitySlot struct {
	Time              int  `json:"time"` // minutes from midnight
	IsAvailable       bool `json:"isAvailable"`
	EstimatedDuration int  `json:"estimatedDuration"` // minutes
}
