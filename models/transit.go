package models

// TransitItem is a seeded catalog record describing a transit option: a bus
// or train route, a rental shop, or a cab service. Seeded once, read
// thereafter; a re-seed overwrites the collection.
type TransitItem struct {
	TransitID   string  `json:"transitid" bson:"transitid"`
	Name        string  `json:"name" bson:"name"`
	Category    string  `json:"category" bson:"category"` // bus/train/rental/cab
	SubCategory string  `json:"sub_category,omitempty" bson:"sub_category,omitempty"`
	From        string  `json:"from,omitempty" bson:"from,omitempty"`
	To          string  `json:"to,omitempty" bson:"to,omitempty"`
	Via         string  `json:"via,omitempty" bson:"via,omitempty"`
	Fare        string  `json:"fare,omitempty" bson:"fare,omitempty"`
	Frequency   string  `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Contact     string  `json:"contact,omitempty" bson:"contact,omitempty"`
	Rating      float64 `json:"rating,omitempty" bson:"rating,omitempty"`
}

const (
	TransitBus    = "bus"
	TransitTrain  = "train"
	TransitRental = "rental"
	TransitCab    = "cab"
)
