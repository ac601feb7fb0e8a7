package models

// BookingSettings holds the reservation rules for a single site. Times of
// day are minutes from midnight (e.g., 1080 for 6:00 PM); durations and
// offsets are minutes.
type BookingSettings struct {
	SiteID                string         `bson:"siteId" json:"siteId"`
	OpenTime              int            `bson:"openTime" json:"openTime"`
	CloseTime             int            `bson:"closeTime" json:"closeTime"`
	SlotInterval          int            `bson:"slotInterval" json:"slotInterval"`                   // gap between bookable slot times, must be > 0
	LastSeatingOffset     int            `bson:"lastSeatingOffset" json:"lastSeatingOffset"`         // 0 disables the last-seating cutoff
	MinLeadTimeHours      float64        `bson:"minLeadTimeHours" json:"minLeadTimeHours"`           // decimal hours, 0 disables
	MaxCoversPerInterval  int            `bson:"maxCoversPerInterval" json:"maxCoversPerInterval"`   // pacing ceiling, 0 disables
	PacingWindowSlots     int            `bson:"pacingWindowSlots" json:"pacingWindowSlots"`         // sliding window width in slots, >= 1
	MaxBookingsPerSlot    int            `bson:"maxBookingsPerSlot" json:"maxBookingsPerSlot"`       // covers per slot for holdback capacity, 0 disables
	WalkInHoldbackPercent int            `bson:"walkInHoldbackPercent" json:"walkInHoldbackPercent"` // share of daily capacity kept for walk-ins, 0-100
	DefaultDuration       int            `bson:"defaultDuration" json:"defaultDuration"`             // seating duration when no meal period matches
	ChannelQuotas         []ChannelQuota `bson:"channelQuotas,omitempty" json:"channelQuotas,omitempty"`
	MealPeriods           []MealPeriod   `bson:"mealPeriods,omitempty" json:"mealPeriods,omitempty"`
}

// ChannelQuota caps the covers one booking channel may place per day.
type ChannelQuota struct {
	Source          string `bson:"source" json:"source"`
	MaxCoversPerDay int    `bson:"maxCoversPerDay" json:"maxCoversPerDay"`
	Priority        int    `bson:"priority" json:"priority"` // display/reporting order, lower first
}

// MealPeriod is a named service window inside the day (e.g., Lunch, Dinner).
// Periods refine the site window: they carry their own seating duration and
// may override the site last-seating offset.
type MealPeriod struct {
	Name              string `bson:"name" json:"name"`
	StartTime         int    `bson:"startTime" json:"startTime"`
	EndTime           int    `bson:"endTime" json:"endTime"`
	DefaultDuration   int    `bson:"defaultDuration" json:"defaultDuration"`
	LastSeatingOffset *int   `bson:"lastSeatingOffset,omitempty" json:"lastSeatingOffset,omitempty"` // nil inherits the site offset; explicit 0 disables the cutoff for this period
}

// Contains reports whether the minute falls inside the period's
// [StartTime, EndTime) window.
func (p MealPeriod) Contains(minute int) bool {
	return minute >= p.StartTime && minute < p.EndTime
}

// QuotaFor returns the channel quota configured for the given source.
func (s BookingSettings) QuotaFor(source string) (ChannelQuota, bool) {
	for _, q := range s.ChannelQuotas {
		if q.Source == source {
			return q, true
		}
	}
	return ChannelQuota{}, false
}

// PeriodFor returns the first meal period containing the minute, if any.
func (s BookingSettings) PeriodFor(minute int) (MealPeriod, bool) {
	for _, p := range s.MealPeriods {
		if p.Contains(minute) {
			return p, true
		}
	}
	return MealPeriod{}, false
}

// SettingsPatch carries a partial settings update. Only non-nil fields are
// merged into the stored record; quota and meal-period lists are replaced
// whole when supplied.
type SettingsPatch struct {
	OpenTime              *int            `json:"openTime,omitempty"`
	CloseTime             *int            `json:"closeTime,omitempty"`
	SlotInterval          *int            `json:"slotInterval,omitempty"`
	LastSeatingOffset     *int            `json:"lastSeatingOffset,omitempty"`
	MinLeadTimeHours      *float64        `json:"minLeadTimeHours,omitempty"`
	MaxCoversPerInterval  *int            `json:"maxCoversPerInterval,omitempty"`
	PacingWindowSlots     *int            `json:"pacingWindowSlots,omitempty"`
	MaxBookingsPerSlot    *int            `json:"maxBookingsPerSlot,omitempty"`
	WalkInHoldbackPercent *int            `json:"walkInHoldbackPercent,omitempty"`
	DefaultDuration       *int            `json:"defaultDuration,omitempty"`
	ChannelQuotas         *[]ChannelQuota `json:"channelQuotas,omitempty"`
	MealPeriods           *[]MealPeriod   `json:"mealPeriods,omitempty"`
}
