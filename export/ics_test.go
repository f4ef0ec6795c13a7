package export

import (
	"strings"
	"testing"
	"time"

	"pondilore/models"
)

func sampleTrip() models.GeneratedTrip {
	return models.GeneratedTrip{
		TripID: "trip123",
		UserID: "u1",
		Draft: models.TripDraft{
			Name:      "Weekend by the sea",
			Type:      models.TripFriends,
			StartDate: "2026-09-05",
			EndDate:   "2026-09-06",
			Travelers: 2,
		},
		Itinerary: []models.Day{
			{DayNumber: 1, Activities: []models.Activity{
				{Place: "Promenade Beach", TimeSlot: models.SlotMorning},
				{Place: "Auroville", TimeSlot: models.SlotAfternoon, Description: "Visit the Matrimandir viewpoint"},
			}},
			{DayNumber: 2, Date: "2026-09-06", Activities: []models.Activity{
				{Place: "Paradise Beach", TimeSlot: models.SlotEvening},
			}},
		},
		CreatedAt: time.Now(),
	}
}

func TestTripICS(t *testing.T) {
	cal, err := TripICS(sampleTrip())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(cal, "BEGIN:VCALENDAR") {
		t.Fatal("not a calendar")
	}
	for _, want := range []string{"Promenade Beach", "Auroville", "Paradise Beach"} {
		if !strings.Contains(cal, want) {
			t.Fatalf("calendar missing %q", want)
		}
	}
	if got := strings.Count(cal, "BEGIN:VEVENT"); got != 3 {
		t.Fatalf("event count = %d, want 3", got)
	}
}

func TestTripICSNoStartDate(t *testing.T) {
	trip := sampleTrip()
	trip.Draft.StartDate = ""
	if _, err := TripICS(trip); err == nil {
		t.Fatal("expected error for missing start date")
	}
}

func TestTripPDF(t *testing.T) {
	data, err := TripPDF(sampleTrip(), "https://example.com/trips/trip123")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatal("output is not a PDF")
	}
}
