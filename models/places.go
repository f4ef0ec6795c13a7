package models

// Place is a static catalog record. The catalog is defined at build time,
// never mutated, shared by all readers.
type Place struct {
	PlaceID      string   `json:"placeid" bson:"placeid"`
	Name         string   `json:"name" bson:"name"`
	Category     string   `json:"category" bson:"category"`
	Description  string   `json:"description" bson:"description"`
	Location     string   `json:"location" bson:"location"`
	Rating       float64  `json:"rating" bson:"rating"`
	Image        string   `json:"image" bson:"image"`
	Tags         []string `json:"tags" bson:"tags"`
	TimeSlot     string   `json:"time_slot" bson:"time_slot"` // Morning/Afternoon/Evening
	BestTime     string   `json:"best_time,omitempty" bson:"best_time,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty" bson:"opening_hours,omitempty"`
	EntryFee     string   `json:"entry_fee,omitempty" bson:"entry_fee,omitempty"`
}

const (
	CategoryBeaches     = "beaches"
	CategoryHeritage    = "heritage"
	CategoryTemples     = "temples"
	CategoryChurches    = "churches"
	CategorySpiritual   = "spiritual"
	CategoryRestaurants = "restaurants"
	CategoryNature      = "nature"
	CategoryParks       = "parks"
	CategoryAdventure   = "adventure"
	CategoryShopping    = "shopping"
)

const (
	SlotMorning   = "Morning"
	SlotAfternoon = "Afternoon"
	SlotEvening   = "Evening"
)
