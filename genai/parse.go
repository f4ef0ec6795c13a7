package genai

import (
	"encoding/json"
	"strings"

	"pondilore/models"
)

// ParseItinerary turns the model's textual response into the day-by-day
// schedule. Accepted shapes: a bare JSON array of days, or an object
// wrapping it under "days"/"itinerary", optionally inside a markdown code
// fence. Anything else is a GenerationError; a malformed result is never
// silently repaired. A day count that disagrees with the requested date
// range is accepted as-is.
func ParseItinerary(raw string) ([]models.Day, error) {
	text := stripFence(strings.TrimSpace(raw))
	if text == "" {
		return nil, &models.GenerationError{Reason: "The generation service returned an empty result"}
	}

	// bare array
	if strings.HasPrefix(text, "[") {
		var days []models.Day
		if err := json.Unmarshal([]byte(text), &days); err != nil {
			return nil, &models.GenerationError{Reason: "Could not read the generated itinerary", Err: err}
		}
		return normalize(days)
	}

	// wrapper object
	var wrapper struct {
		Days      []models.Day `json:"days"`
		Itinerary []models.Day `json:"itinerary"`
	}
	if err := json.Unmarshal([]byte(text), &wrapper); err != nil {
		return nil, &models.GenerationError{Reason: "Could not read the generated itinerary", Err: err}
	}
	if len(wrapper.Days) > 0 {
		return normalize(wrapper.Days)
	}
	if len(wrapper.Itinerary) > 0 {
		return normalize(wrapper.Itinerary)
	}
	return nil, &models.GenerationError{Reason: "The generated itinerary had no days"}
}

func normalize(days []models.Day) ([]models.Day, error) {
	if len(days) == 0 {
		return nil, &models.GenerationError{Reason: "The generated itinerary had no days"}
	}
	for i := range days {
		if days[i].DayNumber == 0 {
			days[i].DayNumber = i + 1
		}
		if days[i].Activities == nil {
			days[i].Activities = []models.Activity{}
		}
	}
	return days, nil
}

// stripFence removes a surrounding markdown code fence, with or without a
// language tag.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop the language tag line ("json", "JSON", or empty)
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
