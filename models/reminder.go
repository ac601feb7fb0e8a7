package models

// ReminderPayload is the asynq task body for a guest booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	SiteID    string `json:"siteId"`
	Date      string `json:"date"`
	Time      int    `json:"time"` // minutes from midnight
	GuestName string `json:"guestName"`
	PartySize int    `json:"partySize"`
}
