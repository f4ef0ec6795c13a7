package genai

import (
	"fmt"
	"strings"

	"pondilore/models"
)

const itinerarySystemPrompt = `You are a Puducherry travel planner. Respond with JSON only, no prose.
The JSON must be an array of day objects:
[{"day_number":1,"date":"YYYY-MM-DD","activities":[{"place":"","description":"","time_slot":"Morning|Afternoon|Evening","time_range":"","travel_time":"","tip":""}],"travel_time":"","notes":""}]
Use real places in and around Puducherry, India. One object per day of the trip.`

// ChatSystemPrompt frames the assistant persona for open-ended questions.
const ChatSystemPrompt = `You are a friendly Puducherry tourism assistant. Answer concisely with practical, local advice about Puducherry (Pondicherry), India.`

func itineraryPrompt(d models.TripDraft) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a %s trip to Puducherry named %q for %d traveler(s), from %s to %s.\n",
		d.Type, d.Name, d.Travelers, d.StartDate, d.EndDate)
	fmt.Fprintf(&b, "Budget: ₹%.0f %s. Pace: %s. Preferred day start: %s.\n",
		d.BudgetAmount, d.BudgetType, d.Pace, d.StartTime)

	if len(d.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s.\n", strings.Join(d.Interests, ", "))
	}
	if d.StayArea != "" {
		fmt.Fprintf(&b, "Staying around: %s.\n", d.StayArea)
	}
	if d.Transport != "" {
		fmt.Fprintf(&b, "Getting around by: %s.\n", d.Transport)
	}

	var needs []string
	if d.MobilityDetails {
		needs = append(needs, "limited mobility (avoid long walks and stairs)")
	}
	if d.TravelingWithKids {
		needs = append(needs, "traveling with kids")
	}
	if d.TravelingWithElderly {
		needs = append(needs, "traveling with elderly")
	}
	if len(needs) > 0 {
		fmt.Fprintf(&b, "Accessibility: %s.\n", strings.Join(needs, "; "))
	}

	return b.String()
}
