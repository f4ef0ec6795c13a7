package transit

import "pondilore/models"

// The built-in seed set. POST /api/transit/seed overwrites the collection
// with exactly these records ("repair data").
var seedItems = []models.TransitItem{
	{TransitID: "bus1", Name: "PRTC Route 1", Category: models.TransitBus, SubCategory: "town", From: "New Bus Stand", To: "Promenade Beach", Via: "M.G. Road, Nehru Street", Fare: "₹10", Frequency: "Every 15 min, 5:30 AM - 9:30 PM", Rating: 3.9},
	{TransitID: "bus2", Name: "PRTC Route 4", Category: models.TransitBus, SubCategory: "town", From: "Railway Station", To: "Auroville", Via: "Anna Salai, ECR Junction", Fare: "₹18", Frequency: "Every 30 min", Rating: 3.8},
	{TransitID: "bus3", Name: "Chennai ECR Express", Category: models.TransitBus, SubCategory: "intercity", From: "Puducherry New Bus Stand", To: "Chennai CMBT", Via: "ECR, Mahabalipuram", Fare: "₹180 - ₹350", Frequency: "Every 20 min, round the clock", Rating: 4.1},
	{TransitID: "bus4", Name: "Bengaluru Overnight", Category: models.TransitBus, SubCategory: "intercity", From: "Puducherry New Bus Stand", To: "Bengaluru Shantinagar", Via: "Tindivanam, Krishnagiri", Fare: "₹550 - ₹900", Frequency: "6 departures nightly", Rating: 4.0},

	{TransitID: "tr1", Name: "Puducherry Express (16115)", Category: models.TransitTrain, From: "Puducherry", To: "Chennai Egmore", Via: "Villupuram Jn, Chengalpattu", Fare: "₹90 (2S) - ₹310 (CC)", Frequency: "Daily, departs 5:15 AM", Rating: 4.2},
	{TransitID: "tr2", Name: "Villupuram Passenger", Category: models.TransitTrain, From: "Puducherry", To: "Villupuram Jn", Fare: "₹15", Frequency: "4 times daily", Rating: 3.7},

	{TransitID: "rn1", Name: "Pondy Wheels", Category: models.TransitRental, SubCategory: "scooter", From: "Mission Street", Fare: "₹350/day + fuel", Contact: "+91 94430 11223", Frequency: "8:00 AM - 8:00 PM", Rating: 4.4},
	{TransitID: "rn2", Name: "Le Velo Rentals", Category: models.TransitRental, SubCategory: "bicycle", From: "Rue Suffren, White Town", Fare: "₹120/day", Contact: "+91 98435 66778", Frequency: "7:00 AM - 7:00 PM", Rating: 4.5},
	{TransitID: "rn3", Name: "Coastal Car Hire", Category: models.TransitRental, SubCategory: "car", From: "Anna Salai", Fare: "₹1,800/day (self-drive)", Contact: "+91 90030 44556", Rating: 4.1},

	{TransitID: "cb1", Name: "Pondy City Cabs", Category: models.TransitCab, SubCategory: "local", Fare: "₹18/km, min ₹120", Contact: "+91 96000 12345", Frequency: "24 hours", Rating: 4.0},
	{TransitID: "cb2", Name: "Auro Taxi Service", Category: models.TransitCab, SubCategory: "outstation", From: "Puducherry", To: "Chennai / Bengaluru / Madurai", Fare: "₹13/km round trip", Contact: "+91 97890 67890", Frequency: "On booking", Rating: 4.3},
}
