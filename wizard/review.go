package wizard

import (
	"fmt"
	"strings"
)

// ReviewItem is a single label/value line in the summary.
type ReviewItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReviewSection is one of the four read-only field groups shown on the
// Review step. Step names the originating step so the UI can jump back to
// it.
type ReviewSection struct {
	Title string       `json:"title"`
	Step  string       `json:"step"`
	Items []ReviewItem `json:"items"`
}

// Review assembles the four-group summary of the draft.
func (s *Session) Review() []ReviewSection {
	s.mu.Lock()
	d := s.draft
	s.mu.Unlock()

	return []ReviewSection{
		{
			Title: "Trip",
			Step:  StepBasics.String(),
			Items: []ReviewItem{
				{Label: "Name", Value: d.Name},
				{Label: "Type", Value: d.Type},
				{Label: "Travelers", Value: fmt.Sprintf("%d", d.Travelers)},
			},
		},
		{
			Title: "Dates",
			Step:  StepDates.String(),
			Items: []ReviewItem{
				{Label: "From", Value: d.StartDate},
				{Label: "To", Value: d.EndDate},
				{Label: "Preferred start", Value: d.StartTime},
			},
		},
		{
			Title: "Budget & pace",
			Step:  StepPreferences.String(),
			Items: []ReviewItem{
				{Label: "Budget", Value: costEstimate(d)},
				{Label: "Pace", Value: d.Pace},
				{Label: "Interests", Value: strings.Join(d.Interests, ", ")},
				{Label: "Stay area", Value: orDash(d.StayArea)},
				{Label: "Transport", Value: orDash(d.Transport)},
			},
		},
		{
			Title: "Accessibility",
			Step:  StepPreferences.String(),
			Items: []ReviewItem{
				{Label: "Mobility assistance", Value: yesNo(d.MobilityDetails)},
				{Label: "Traveling with kids", Value: yesNo(d.TravelingWithKids)},
				{Label: "Traveling with elderly", Value: yesNo(d.TravelingWithElderly)},
			},
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
