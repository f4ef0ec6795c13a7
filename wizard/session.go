package wizard

import (
	"strings"
	"sync"
	"time"

	"pondilore/models"
)

// Step is one of the four wizard states. Transitions are linear with
// back-transitions only; there is no skipping forward.
type Step int

const (
	StepBasics Step = iota
	StepDates
	StepPreferences
	StepReview
)

func stepFromName(name string) (Step, bool) {
	switch name {
	case "basics":
		return StepBasics, true
	case "dates":
		return StepDates, true
	case "preferences":
		return StepPreferences, true
	case "review":
		return StepReview, true
	}
	return StepBasics, false
}

func (s Step) String() string {
	switch s {
	case StepBasics:
		return "basics"
	case StepDates:
		return "dates"
	case StepPreferences:
		return "preferences"
	case StepReview:
		return "review"
	}
	return "unknown"
}

// Session is one user's wizard instance: the draft under construction, the
// current step, and the single-flight generation guard.
type Session struct {
	mu         sync.Mutex
	draft      models.TripDraft
	step       Step
	lastError  string
	generating bool
	consumed   bool
}

// NewSession opens the wizard at Basics with the documented draft defaults.
func NewSession() *Session {
	return &Session{
		draft: models.TripDraft{
			Type:         models.TripSolo,
			Travelers:    1,
			BudgetAmount: 5000,
			BudgetType:   models.BudgetPerPerson,
			Pace:         models.PaceBalanced,
			Interests:    []string{"Beaches", "Heritage"},
			StartTime:    models.SlotMorning,
		},
		step: StepBasics,
	}
}

// DraftPatch is a shallow field-level merge into the draft. Nil fields are
// left untouched.
type DraftPatch struct {
	Name         *string   `json:"name,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Travelers    *int      `json:"travelers,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	BudgetAmount *float64  `json:"budget_amount,omitempty"`
	BudgetType   *string   `json:"budget_type,omitempty"`
	Pace         *string   `json:"pace,omitempty"`
	Interests    *[]string `json:"interests,omitempty"`
	StayArea     *string   `json:"stay_area,omitempty"`
	Transport    *string   `json:"transport,omitempty"`
	StartTime    *string   `json:"start_time,omitempty"`

	MobilityDetails      *bool `json:"mobility_details,omitempty"`
	TravelingWithKids    *bool `json:"traveling_with_kids,omitempty"`
	TravelingWithElderly *bool `json:"traveling_with_elderly,omitempty"`
}

// Update merges the patch into the draft and clears any pending error.
func (s *Session) Update(patch DraftPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Name != nil {
		s.draft.Name = *patch.Name
	}
	if patch.Type != nil {
		s.draft.Type = *patch.Type
	}
	if patch.Travelers != nil {
		s.draft.Travelers = *patch.Travelers
	}
	if patch.StartDate != nil {
		s.draft.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		s.draft.EndDate = *patch.EndDate
	}
	if patch.BudgetAmount != nil {
		s.draft.BudgetAmount = *patch.BudgetAmount
	}
	if patch.BudgetType != nil {
		s.draft.BudgetType = *patch.BudgetType
	}
	if patch.Pace != nil {
		s.draft.Pace = *patch.Pace
	}
	if patch.Interests != nil {
		s.draft.Interests = *patch.Interests
	}
	if patch.StayArea != nil {
		s.draft.StayArea = *patch.StayArea
	}
	if patch.Transport != nil {
		s.draft.Transport = *patch.Transport
	}
	if patch.StartTime != nil {
		s.draft.StartTime = *patch.StartTime
	}
	if patch.MobilityDetails != nil {
		s.draft.MobilityDetails = *patch.MobilityDetails
	}
	if patch.TravelingWithKids != nil {
		s.draft.TravelingWithKids = *patch.TravelingWithKids
	}
	if patch.TravelingWithElderly != nil {
		s.draft.TravelingWithElderly = *patch.TravelingWithElderly
	}

	s.lastError = ""
}

// Next runs the current step's guard and advances on success. On failure the
// step and draft are left unchanged and the error is recorded for display.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step == StepReview {
		// terminal; Generate is the only action from here
		return nil
	}

	if err := validateStep(s.step, s.draft); err != nil {
		s.lastError = err.Error()
		return err
	}

	s.step++
	s.lastError = ""
	return nil
}

// Back never validates.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step > StepBasics {
		s.step--
	}
	s.lastError = ""
}

// JumpBack moves to an earlier step (used by the review summary's
// click-to-edit links). Forward jumps are refused.
func (s *Session) JumpBack(target Step) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if target >= StepBasics && target < s.step {
		s.step = target
		s.lastError = ""
	}
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Draft() models.TripDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func validateStep(step Step, d models.TripDraft) error {
	switch step {
	case StepBasics:
		if strings.TrimSpace(d.Name) == "" {
			return &models.ValidationError{Message: "Please enter a trip name."}
		}
		if d.Travelers < 1 {
			return &models.ValidationError{Message: "At least one traveler is required."}
		}
	case StepDates:
		if d.StartDate == "" || d.EndDate == "" {
			return &models.ValidationError{Message: "Please choose both start and end dates."}
		}
		start, err := time.Parse("2006-01-02", d.StartDate)
		if err != nil {
			return &models.ValidationError{Message: "Please choose both start and end dates."}
		}
		end, err := time.Parse("2006-01-02", d.EndDate)
		if err != nil {
			return &models.ValidationError{Message: "Please choose both start and end dates."}
		}
		if start.After(end) {
			return &models.ValidationError{Message: "End date cannot be before start date."}
		}
	case StepPreferences:
		if len(d.Interests) == 0 {
			return &models.ValidationError{Message: "Select at least one interest."}
		}
	}
	return nil
}
