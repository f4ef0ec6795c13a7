package export

import (
	"fmt"
	"time"

	"pondilore/models"

	ics "github.com/arran4/golang-ical"
)

// Activity slots map to fixed local start hours.
var slotHours = map[string]int{
	models.SlotMorning:   9,
	models.SlotAfternoon: 13,
	models.SlotEvening:   18,
}

// TripICS serializes the itinerary as an iCalendar feed, one event per
// activity. Days without a parseable date fall back to the draft start
// date plus the day offset.
func TripICS(trip models.GeneratedTrip) (string, error) {
	start, err := time.Parse("2006-01-02", trip.Draft.StartDate)
	if err != nil {
		return "", fmt.Errorf("trip has no valid start date: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//pondilore//trip//EN")

	for _, day := range trip.Itinerary {
		date := start.AddDate(0, 0, day.DayNumber-1)
		if day.Date != "" {
			if d, err := time.Parse("2006-01-02", day.Date); err == nil {
				date = d
			}
		}
		for i, act := range day.Activities {
			hour, ok := slotHours[act.TimeSlot]
			if !ok {
				hour = 10
			}
			begin := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.Local)

			ev := cal.AddEvent(fmt.Sprintf("%s-d%d-a%d", trip.TripID, day.DayNumber, i))
			ev.SetCreatedTime(trip.CreatedAt)
			ev.SetStartAt(begin)
			ev.SetEndAt(begin.Add(2 * time.Hour))
			ev.SetSummary(act.Place)
			if act.Description != "" {
				ev.SetDescription(act.Description)
			}
			ev.SetLocation("Puducherry")
		}
	}
	return cal.Serialize(), nil
}
