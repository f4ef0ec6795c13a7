package models

import "time"

// Trip types
const (
	TripSolo      = "Solo"
	TripFriends   = "Friends"
	TripFamily    = "Family"
	TripHoneymoon = "Honeymoon"
	TripBusiness  = "Business + Leisure"
)

// Pace
const (
	PaceRelaxed  = "Relaxed"
	PaceBalanced = "Balanced"
	PaceFast     = "Fast-paced"
)

// Budget types
const (
	BudgetPerPerson = "per person"
	BudgetTotal     = "total"
)

// TripDraft is the mutable trip a user builds in the wizard. It is consumed
// exactly once by the generation gateway; a fresh draft is required for
// another trip.
type TripDraft struct {
	Name         string   `json:"name" bson:"name"`
	Type         string   `json:"type" bson:"type"`
	Travelers    int      `json:"travelers" bson:"travelers"`
	StartDate    string   `json:"start_date" bson:"start_date"` // YYYY-MM-DD
	EndDate      string   `json:"end_date" bson:"end_date"`
	BudgetAmount float64  `json:"budget_amount" bson:"budget_amount"`
	BudgetType   string   `json:"budget_type" bson:"budget_type"`
	Pace         string   `json:"pace" bson:"pace"`
	Interests    []string `json:"interests" bson:"interests"`
	StayArea     string   `json:"stay_area" bson:"stay_area"`
	Transport    string   `json:"transport" bson:"transport"`
	StartTime    string   `json:"start_time" bson:"start_time"`

	MobilityDetails      bool `json:"mobility_details" bson:"mobility_details"`
	TravelingWithKids    bool `json:"traveling_with_kids" bson:"traveling_with_kids"`
	TravelingWithElderly bool `json:"traveling_with_elderly" bson:"traveling_with_elderly"`
}

// Activity belongs to exactly one Day.
type Activity struct {
	Place       string `json:"place" bson:"place"`
	Description string `json:"description" bson:"description"`
	TimeSlot    string `json:"time_slot" bson:"time_slot"` // Morning/Afternoon/Evening
	TimeRange   string `json:"time_range" bson:"time_range"`
	TravelTime  string `json:"travel_time,omitempty" bson:"travel_time,omitempty"`
	Tip         string `json:"tip,omitempty" bson:"tip,omitempty"`
}

// Day is one entry of the generated day-by-day schedule, ordered by DayNumber.
type Day struct {
	DayNumber  int        `json:"day_number" bson:"day_number"`
	Date       string     `json:"date" bson:"date"`
	Activities []Activity `json:"activities" bson:"activities"`
	TravelTime string     `json:"travel_time,omitempty" bson:"travel_time,omitempty"`
	Notes      string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// GeneratedTrip is the persisted record: the consumed draft plus its
// generated itinerary. Created once, read many times, deleted by explicit
// user action; never updated in place.
type GeneratedTrip struct {
	TripID       string    `json:"tripid" bson:"tripid"`
	UserID       string    `json:"user_id" bson:"user_id"`
	Draft        TripDraft `json:"draft" bson:"draft"`
	Itinerary    []Day     `json:"itinerary" bson:"itinerary"`
	Status       string    `json:"status" bson:"status"` // draft/confirmed
	PlaceCount   int       `json:"place_count" bson:"place_count"`
	CostEstimate string    `json:"cost_estimate" bson:"cost_estimate"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
