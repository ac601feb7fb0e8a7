package models

// Table is one physical table registered with a site's optimizer.
// CombinableWith lists the tables this one may be merged with; an empty
// list means "any combinable table" until the other side's explicit list
// says otherwise.
type Table struct {
	TableID            string   `bson:"tableId" json:"tableId"`
	SiteID             string   `bson:"siteId" json:"siteId"`
	Label              string   `bson:"label" json:"label"`
	MinCapacity        int      `bson:"minCapacity" json:"minCapacity"`
	MaxCapacity        int      `bson:"maxCapacity" json:"maxCapacity"`
	IsCombinable       bool     `bson:"isCombinable" json:"isCombinable"`
	CombinableWith     []string `bson:"combinableWith,omitempty" json:"combinableWith,omitempty"`
	MaxCombinationSize int      `bson:"maxCombinationSize" json:"maxCombinationSize"` // 0 = unlimited
}

// AllowsPartner reports whether t's combinable-with list permits other.
// An empty list is a wildcard.
func (t Table) AllowsPartner(other string) bool {
	if len(t.CombinableWith) == 0 {
		return true
	}
	for _, id := range t.CombinableWith {
		if id == other {
			return true
		}
	}
	return false
}

// AssignmentRequest asks which table(s) should serve an accepted booking.
// The optimizer does not check time overlaps; BookingTime and Duration ride
// along for the caller's own occupancy arbitration.
type AssignmentRequest struct {
	BookingID   string `json:"bookingId"`
	PartySize   int    `json:"partySize"`
	BookingTime int    `json:"bookingTime"` // minutes from midnight
	Duration    int    `json:"duration"`    // minutes
}

// TableRecommendation is one way to seat the requested party: a single
// table, or a set of combined tables.
type TableRecommendation struct {
	TableID             string   `json:"tableId,omitempty"`
	CombinedTableIDs    []string `json:"combinedTableIds,omitempty"`
	RequiresCombination bool     `json:"requiresCombination"`
	TotalCapacity       int      `json:"totalCapacity"`
}

// RecommendationResult carries the ranked recommendations. Success=false
// with an empty list is a normal negative outcome, not an error.
type RecommendationResult struct {
	Success         bool                  `json:"success"`
	Recommendations []TableRecommendation `json:"recommendations"`
}
