package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pondilore/models"

	"github.com/google/uuid"
)

// ErrGenerationInFlight is returned when Generate is invoked while a
// previous request on the same session has not resolved. The caller treats
// it as a no-op; exactly one gateway call is ever in flight per session.
var ErrGenerationInFlight = errors.New("a generation request is already in flight")

// ErrDraftConsumed is returned when Generate is invoked on a session whose
// draft was already turned into a trip. A fresh session is required.
var ErrDraftConsumed = errors.New("this trip has already been generated; start a new one")

// ItineraryGenerator is the generation gateway boundary: a completed draft
// in, a day-by-day itinerary out.
type ItineraryGenerator interface {
	GenerateItinerary(ctx context.Context, draft models.TripDraft) ([]models.Day, error)
}

// TripCreator is the persistence boundary Generate writes through.
type TripCreator interface {
	CreateTrip(ctx context.Context, trip models.GeneratedTrip) error
}

// Generate consumes the reviewed draft: one gateway call, then one store
// write. On any failure the draft and step survive intact so the user can
// retry without re-entering data.
func (s *Session) Generate(ctx context.Context, ident models.Identity, gen ItineraryGenerator, store TripCreator) (*models.GeneratedTrip, error) {
	s.mu.Lock()
	if s.step != StepReview {
		s.mu.Unlock()
		return nil, &models.ValidationError{Message: "Finish the wizard before generating."}
	}
	if s.consumed {
		s.mu.Unlock()
		return nil, ErrDraftConsumed
	}
	if s.generating {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	s.generating = true
	draft := s.draft
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.generating = false
		s.mu.Unlock()
	}()

	if !ident.SignedIn() {
		err := &models.AuthRequiredError{}
		s.recordError(err.Error())
		return nil, err
	}

	days, err := gen.GenerateItinerary(ctx, draft)
	if err != nil {
		s.recordError(err.Error())
		return nil, err
	}

	trip := BuildTrip(ident, draft, days)
	if err := store.CreateTrip(ctx, trip); err != nil {
		perr := &models.PersistenceError{}
		if !errors.As(err, &perr) {
			perr = &models.PersistenceError{Op: "create", Err: err}
		}
		s.recordError(perr.Error())
		return nil, perr
	}

	s.mu.Lock()
	s.consumed = true
	s.lastError = ""
	s.mu.Unlock()

	return &trip, nil
}

func (s *Session) recordError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

// BuildTrip assembles the persisted record from a consumed draft and its
// generated itinerary: confirmed status, derived place count and cost
// string.
func BuildTrip(ident models.Identity, draft models.TripDraft, days []models.Day) models.GeneratedTrip {
	count := 0
	for _, d := range days {
		count += len(d.Activities)
	}

	return models.GeneratedTrip{
		TripID:       uuid.NewString(),
		UserID:       ident.UserID,
		Draft:        draft,
		Itinerary:    days,
		Status:       "confirmed",
		PlaceCount:   count,
		CostEstimate: costEstimate(draft),
		CreatedAt:    time.Now(),
	}
}

func costEstimate(draft models.TripDraft) string {
	if draft.BudgetType == models.BudgetTotal {
		return fmt.Sprintf("₹%.0f total", draft.BudgetAmount)
	}
	return fmt.Sprintf("₹%.0f per person × %d travelers", draft.BudgetAmount, draft.Travelers)
}
