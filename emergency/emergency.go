package emergency

// Closed record types per facility, one struct per entity instead of a
// shared loosely-typed shape.

type Hospital struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Emergency bool   `json:"emergency_24x7"`
	Specialty string `json:"specialty,omitempty"`
}

type PoliceStation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

type FireStation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type Pharmacy struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Open24x7 bool   `json:"open_24x7"`
}

// Directory is the static emergency listing for the city.
type Directory struct {
	Hospitals      []Hospital        `json:"hospitals"`
	PoliceStations []PoliceStation   `json:"police_stations"`
	FireStations   []FireStation     `json:"fire_stations"`
	Pharmacies     []Pharmacy        `json:"pharmacies"`
	Helplines      map[string]string `json:"helplines"`
}

var directory = Directory{
	Hospitals: []Hospital{
		{ID: "hos1", Name: "JIPMER", Address: "Dhanvantari Nagar", Phone: "0413-2296000", Emergency: true, Specialty: "Multi-specialty, teaching hospital"},
		{ID: "hos2", Name: "Indira Gandhi Government General Hospital", Address: "Victor Simonel Street", Phone: "0413-2336050", Emergency: true},
		{ID: "hos3", Name: "Pondicherry Institute of Medical Sciences", Address: "Kalapet", Phone: "0413-2656271", Emergency: true},
		{ID: "hos4", Name: "Sri Manakula Vinayagar Medical College Hospital", Address: "Madagadipet", Phone: "0413-2643000", Emergency: true},
	},
	PoliceStations: []PoliceStation{
		{ID: "pol1", Name: "Grand Bazaar Police Station", Address: "Bharathi Street", Phone: "0413-2336066", Jurisdiction: "Boulevard town"},
		{ID: "pol2", Name: "Odiansalai Police Station", Address: "Odiansalai", Phone: "0413-2334066", Jurisdiction: "West city"},
		{ID: "pol3", Name: "D'Nagar Police Station", Address: "Dharma Nagar", Phone: "0413-2272548"},
	},
	FireStations: []FireStation{
		{ID: "fire1", Name: "Puducherry Fire Station", Address: "Dumas Street", Phone: "0413-2339101"},
		{ID: "fire2", Name: "Villianur Fire Station", Address: "Villianur Main Road", Phone: "0413-2666101"},
	},
	Pharmacies: []Pharmacy{
		{ID: "pha1", Name: "Apollo Pharmacy", Address: "Mission Street", Phone: "0413-2224047", Open24x7: true},
		{ID: "pha2", Name: "MedPlus", Address: "Anna Salai", Phone: "0413-2203366"},
		{ID: "pha3", Name: "JIPMER Pharmacy", Address: "Dhanvantari Nagar", Phone: "0413-2296000", Open24x7: true},
	},
	Helplines: map[string]string{
		"police":    "100",
		"fire":      "101",
		"ambulance": "108",
		"tourist":   "1363",
	},
}

// GetDirectory returns the full static directory.
func GetDirectory() Directory { return directory }
