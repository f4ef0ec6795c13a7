package catalog

import "pondilore/models"

// The static Puducherry catalog. Build-time data, never mutated; ids are
// stable and referenced by the frontend.
var places = []models.Place{
	{PlaceID: "b1", Name: "Promenade Beach", Category: models.CategoryBeaches, Description: "The iconic 1.5 km seafront stretch along Goubert Avenue, closed to traffic every evening.", Location: "Goubert Avenue, White Town", Rating: 4.6, Image: "/static/placepic/promenade.jpg", Tags: []string{"sunrise", "walk", "sea"}, TimeSlot: models.SlotEvening, BestTime: "October to March", OpeningHours: "Open all day", EntryFee: "Free"},
	{PlaceID: "b2", Name: "Paradise Beach", Category: models.CategoryBeaches, Description: "Golden-sand island beach at Chunnambar, reached by a short ferry ride through the backwaters.", Location: "Chunnambar, Cuddalore Road", Rating: 4.5, Image: "/static/placepic/paradise.jpg", Tags: []string{"ferry", "swimming", "sand"}, TimeSlot: models.SlotMorning, BestTime: "November to February", OpeningHours: "9:00 AM - 5:00 PM", EntryFee: "₹300 (ferry included)"},
	{PlaceID: "b3", Name: "Serenity Beach", Category: models.CategoryBeaches, Description: "Quiet surfing beach north of the city, popular with the Kottakuppam surf schools.", Location: "Kottakuppam", Rating: 4.4, Image: "/static/placepic/serenity.jpg", Tags: []string{"surfing", "quiet"}, TimeSlot: models.SlotMorning, BestTime: "Early mornings", EntryFee: "Free"},
	{PlaceID: "b4", Name: "Auroville Beach", Category: models.CategoryBeaches, Description: "Shallow beach on the East Coast Road, a short ride from the Auroville township.", Location: "East Coast Road, Auroville", Rating: 4.2, Image: "/static/placepic/auroville-beach.jpg", Tags: []string{"shallow", "family"}, TimeSlot: models.SlotAfternoon, EntryFee: "Free"},
	{PlaceID: "b5", Name: "Veerampattinam Beach", Category: models.CategoryBeaches, Description: "Long fishing-village beach with casuarina groves, host of the annual car festival.", Location: "Veerampattinam", Rating: 4.1, Image: "/static/placepic/veerampattinam.jpg", Tags: []string{"fishing", "local"}, TimeSlot: models.SlotEvening, EntryFee: "Free"},

	{PlaceID: "h1", Name: "French Quarter (White Town)", Category: models.CategoryHeritage, Description: "Grid of mustard-yellow colonial villas, bougainvillea lanes and heritage cafés.", Location: "White Town", Rating: 4.7, Image: "/static/placepic/white-town.jpg", Tags: []string{"colonial", "architecture", "walk"}, TimeSlot: models.SlotMorning, BestTime: "Before 10 AM for photos", EntryFee: "Free"},
	{PlaceID: "h2", Name: "Pondicherry Museum", Category: models.CategoryHeritage, Description: "Sculpture gallery, French-era furniture and finds from the Arikamedu Roman trade site.", Location: "Saint Louis Street", Rating: 4.2, Image: "/static/placepic/museum.jpg", Tags: []string{"museum", "history"}, TimeSlot: models.SlotAfternoon, OpeningHours: "9:40 AM - 5:20 PM, closed Mondays", EntryFee: "₹10"},
	{PlaceID: "h3", Name: "Arikamedu", Category: models.CategoryHeritage, Description: "Excavated Roman trading port on the Ariyankuppam river, 2nd century BCE onward.", Location: "Kakkayanthope, Ariyankuppam", Rating: 4.0, Image: "/static/placepic/arikamedu.jpg", Tags: []string{"archaeology", "ruins"}, TimeSlot: models.SlotMorning, EntryFee: "Free"},
	{PlaceID: "h4", Name: "Aayi Mandapam", Category: models.CategoryHeritage, Description: "White Napoleon-III monument at the centre of Bharathi Park.", Location: "Bharathi Park", Rating: 4.3, Image: "/static/placepic/aayi-mandapam.jpg", Tags: []string{"monument", "park"}, TimeSlot: models.SlotEvening, EntryFee: "Free"},
	{PlaceID: "h5", Name: "Old Lighthouse", Category: models.CategoryHeritage, Description: "1836 red-and-white lighthouse overlooking the Promenade, the first on the Coromandel coast.", Location: "Goubert Avenue", Rating: 4.1, Image: "/static/placepic/lighthouse.jpg", Tags: []string{"landmark", "photo"}, TimeSlot: models.SlotEvening, EntryFee: "Free"},

	{PlaceID: "t1", Name: "Manakula Vinayagar Temple", Category: models.CategoryTemples, Description: "Pre-French Ganesha temple famed for its gold-plated spire and temple elephant tradition.", Location: "Manakula Vinayagar Koil Street", Rating: 4.7, Image: "/static/placepic/manakula.jpg", Tags: []string{"ganesha", "heritage"}, TimeSlot: models.SlotMorning, OpeningHours: "5:45 AM - 12:30 PM, 4:00 PM - 9:30 PM", EntryFee: "Free"},
	{PlaceID: "t2", Name: "Vedapureeswarar Temple", Category: models.CategoryTemples, Description: "Shiva temple rebuilt in 1788 after its destruction during French-British conflicts.", Location: "M.G. Road", Rating: 4.4, Image: "/static/placepic/vedapureeswarar.jpg", Tags: []string{"shiva", "dravidian"}, TimeSlot: models.SlotMorning, EntryFee: "Free"},
	{PlaceID: "t3", Name: "Varadaraja Perumal Temple", Category: models.CategoryTemples, Description: "11th-century Vishnu temple, among the oldest structures in the city.", Location: "M.G. Road", Rating: 4.3, Image: "/static/placepic/varadaraja.jpg", Tags: []string{"vishnu", "chola"}, TimeSlot: models.SlotMorning, EntryFee: "Free"},

	{PlaceID: "c1", Name: "Basilica of the Sacred Heart of Jesus", Category: models.CategoryChurches, Description: "Gothic-revival basilica with rare stained-glass panels of the life of Christ.", Location: "Subbayah Salai", Rating: 4.6, Image: "/static/placepic/sacred-heart.jpg", Tags: []string{"gothic", "basilica"}, TimeSlot: models.SlotMorning, OpeningHours: "7:00 AM - 6:30 PM", EntryFee: "Free"},
	{PlaceID: "c2", Name: "Immaculate Conception Cathedral", Category: models.CategoryChurches, Description: "300-year-old blue-and-white cathedral, seat of the Archdiocese of Pondicherry.", Location: "Mission Street", Rating: 4.5, Image: "/static/placepic/immaculate.jpg", Tags: []string{"cathedral", "french"}, TimeSlot: models.SlotAfternoon, EntryFee: "Free"},
	{PlaceID: "c3", Name: "Eglise de Notre Dame des Anges", Category: models.CategoryChurches, Description: "Pink-and-cream Greco-Roman church facing the sea, built with limestone-and-eggwhite plaster.", Location: "Rue Dumas, White Town", Rating: 4.5, Image: "/static/placepic/notre-dame.jpg", Tags: []string{"seafront", "french"}, TimeSlot: models.SlotEvening, EntryFee: "Free"},

	{PlaceID: "s1", Name: "Sri Aurobindo Ashram", Category: models.CategorySpiritual, Description: "Spiritual community founded in 1926 by Sri Aurobindo and the Mother; the samadhi courtyard is open to visitors.", Location: "Rue de la Marine", Rating: 4.6, Image: "/static/placepic/ashram.jpg", Tags: []string{"meditation", "quiet"}, TimeSlot: models.SlotMorning, OpeningHours: "8:00 AM - 12:00 PM, 2:00 PM - 6:00 PM", EntryFee: "Free"},
	{PlaceID: "s2", Name: "Matrimandir", Category: models.CategorySpiritual, Description: "Golden meditation sphere at the centre of Auroville; viewing point open to day visitors.", Location: "Auroville", Rating: 4.7, Image: "/static/placepic/matrimandir.jpg", Tags: []string{"auroville", "meditation"}, TimeSlot: models.SlotMorning, BestTime: "Viewing passes before 4 PM", EntryFee: "Free (viewing point)"},
	{PlaceID: "s3", Name: "Auroville Visitors Centre", Category: models.CategorySpiritual, Description: "Exhibitions on the Auroville experiment, boutiques and the path to the Matrimandir viewpoint.", Location: "Auroville", Rating: 4.4, Image: "/static/placepic/auroville-vc.jpg", Tags: []string{"auroville", "exhibition"}, TimeSlot: models.SlotAfternoon, OpeningHours: "9:00 AM - 5:30 PM", EntryFee: "Free"},

	{PlaceID: "r1", Name: "Le Café", Category: models.CategoryRestaurants, Description: "24-hour seafront café on the Promenade, an institution for coffee at sunrise.", Location: "Goubert Avenue", Rating: 4.2, Image: "/static/placepic/le-cafe.jpg", Tags: []string{"coffee", "seafront"}, TimeSlot: models.SlotMorning, OpeningHours: "Open 24 hours"},
	{PlaceID: "r2", Name: "Villa Shanti", Category: models.CategoryRestaurants, Description: "Franco-Tamil fine dining in a restored heritage courtyard villa.", Location: "Suffren Street", Rating: 4.5, Image: "/static/placepic/villa-shanti.jpg", Tags: []string{"fine-dining", "heritage"}, TimeSlot: models.SlotEvening, OpeningHours: "12:00 PM - 10:30 PM"},
	{PlaceID: "r3", Name: "Baker Street", Category: models.CategoryRestaurants, Description: "French bakery famous for croissants, quiches and éclairs.", Location: "Bussy Street", Rating: 4.4, Image: "/static/placepic/baker-street.jpg", Tags: []string{"bakery", "french"}, TimeSlot: models.SlotMorning, OpeningHours: "7:00 AM - 9:00 PM"},
	{PlaceID: "r4", Name: "Surguru", Category: models.CategoryRestaurants, Description: "No-frills South Indian vegetarian mess beloved for its thalis and filter coffee.", Location: "Mission Street", Rating: 4.3, Image: "/static/placepic/surguru.jpg", Tags: []string{"south-indian", "vegetarian"}, TimeSlot: models.SlotAfternoon},
	{PlaceID: "r5", Name: "Café des Arts", Category: models.CategoryRestaurants, Description: "Courtyard créperie and gallery in a crumbling White Town villa.", Location: "Suffren Street", Rating: 4.4, Image: "/static/placepic/cafe-des-arts.jpg", Tags: []string{"crepes", "art"}, TimeSlot: models.SlotMorning, OpeningHours: "8:30 AM - 7:00 PM, closed Tuesdays"},

	{PlaceID: "n1", Name: "Ousteri Lake", Category: models.CategoryNature, Description: "Wetland bird sanctuary west of the city; winter home to pelicans, ibises and storks.", Location: "Ossudu", Rating: 4.3, Image: "/static/placepic/ousteri.jpg", Tags: []string{"birds", "wetland"}, TimeSlot: models.SlotMorning, BestTime: "November to March"},
	{PlaceID: "n2", Name: "Pondicherry Botanical Garden", Category: models.CategoryNature, Description: "1826 French-laid garden with exotic trees, a toy train and an aquarium.", Location: "Orleanpet", Rating: 4.0, Image: "/static/placepic/botanical.jpg", Tags: []string{"garden", "family"}, TimeSlot: models.SlotAfternoon, OpeningHours: "10:00 AM - 5:00 PM", EntryFee: "₹10"},

	{PlaceID: "p1", Name: "Bharathi Park", Category: models.CategoryParks, Description: "Shaded central park around the Aayi Mandapam, ringed by government heritage buildings.", Location: "White Town", Rating: 4.3, Image: "/static/placepic/bharathi-park.jpg", Tags: []string{"shade", "family"}, TimeSlot: models.SlotEvening, OpeningHours: "6:00 AM - 8:00 PM", EntryFee: "Free"},

	{PlaceID: "a1", Name: "Chunnambar Boat House", Category: models.CategoryAdventure, Description: "Backwater boating, kayaking and the ferry point for Paradise Beach.", Location: "Cuddalore Road", Rating: 4.2, Image: "/static/placepic/chunnambar.jpg", Tags: []string{"boating", "backwater"}, TimeSlot: models.SlotMorning, OpeningHours: "9:00 AM - 5:00 PM", EntryFee: "Rides from ₹150"},
	{PlaceID: "a2", Name: "Temple Adventures Dive Centre", Category: models.CategoryAdventure, Description: "India's east-coast scuba pioneer; fun dives and PADI courses off Pondicherry's reefs.", Location: "Colas Nagar", Rating: 4.6, Image: "/static/placepic/scuba.jpg", Tags: []string{"scuba", "diving"}, TimeSlot: models.SlotMorning, BestTime: "January to June"},
	{PlaceID: "a3", Name: "Kallialay Surf School", Category: models.CategoryAdventure, Description: "One of India's oldest surf schools, at Serenity Beach.", Location: "Serenity Beach, Kottakuppam", Rating: 4.7, Image: "/static/placepic/surf-school.jpg", Tags: []string{"surfing", "lessons"}, TimeSlot: models.SlotMorning},

	{PlaceID: "m1", Name: "Goubert Market", Category: models.CategoryShopping, Description: "The city's main bazaar: flowers, vegetables, spices and wet market, at full tilt by sunrise.", Location: "M.G. Road", Rating: 4.1, Image: "/static/placepic/goubert-market.jpg", Tags: []string{"bazaar", "local"}, TimeSlot: models.SlotMorning, OpeningHours: "6:00 AM - 8:00 PM"},
	{PlaceID: "m2", Name: "Sunday Market", Category: models.CategoryShopping, Description: "Street flea market along M.G. Road; clothes, antiques and bric-a-brac.", Location: "M.G. Road", Rating: 4.0, Image: "/static/placepic/sunday-market.jpg", Tags: []string{"flea", "bargain"}, TimeSlot: models.SlotEvening, OpeningHours: "Sundays only"},
	{PlaceID: "m3", Name: "Auroville Boutique", Category: models.CategoryShopping, Description: "Handmade paper, incense, ceramics and textiles from Auroville's workshops.", Location: "J.N. Street", Rating: 4.3, Image: "/static/placepic/auroville-boutique.jpg", Tags: []string{"handmade", "souvenirs"}, TimeSlot: models.SlotAfternoon},
}
