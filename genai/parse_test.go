package genai

import (
	"errors"
	"testing"

	"pondilore/models"
)

const bareArray = `[
  {"day_number":1,"date":"2025-12-01","activities":[
    {"place":"Promenade Beach","description":"Sunrise walk","time_slot":"Morning","time_range":"6:00 - 8:00"},
    {"place":"Le Café","description":"Breakfast","time_slot":"Morning","time_range":"8:00 - 9:00"}
  ]},
  {"day_number":2,"date":"2025-12-02","activities":[
    {"place":"Matrimandir","description":"Viewing point","time_slot":"Morning","time_range":"9:00 - 11:00"}
  ]}
]`

func TestParseBareArray(t *testing.T) {
	days, err := ParseItinerary(bareArray)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days", len(days))
	}
	if days[0].Activities[0].Place != "Promenade Beach" {
		t.Fatalf("first activity = %q", days[0].Activities[0].Place)
	}
}

func TestParseFencedArray(t *testing.T) {
	days, err := ParseItinerary("```json\n" + bareArray + "\n```")
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days", len(days))
	}
}

func TestParseWrapperObject(t *testing.T) {
	days, err := ParseItinerary(`{"days":` + bareArray + `}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days", len(days))
	}

	days, err = ParseItinerary(`{"itinerary":` + bareArray + `}`)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days", len(days))
	}
}

func TestParseFillsDayNumbers(t *testing.T) {
	days, err := ParseItinerary(`[{"date":"2025-12-01"},{"date":"2025-12-02"}]`)
	if err != nil {
		t.Fatal(err)
	}
	if days[0].DayNumber != 1 || days[1].DayNumber != 2 {
		t.Fatalf("day numbers not filled: %d, %d", days[0].DayNumber, days[1].DayNumber)
	}
	if days[0].Activities == nil {
		t.Fatal("activities must never be nil")
	}
}

func TestParseMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"Sorry, I cannot plan that trip.",
		`{"days": "not an array"}`,
		`[{"day_number": "one"}]`,
		`{}`,
	} {
		_, err := ParseItinerary(raw)
		var genErr *models.GenerationError
		if !errors.As(err, &genErr) {
			t.Fatalf("input %q: got %v, want GenerationError", raw, err)
		}
	}
}
