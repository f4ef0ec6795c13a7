package wizard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"pondilore/models"
)

type fakeGenerator struct {
	calls   int32
	days    []models.Day
	err     error
	release chan struct{} // when non-nil, blocks until closed
}

func (f *fakeGenerator) GenerateItinerary(ctx context.Context, draft models.TripDraft) ([]models.Day, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.release != nil {
		<-f.release
	}
	return f.days, f.err
}

type fakeStore struct {
	trips []models.GeneratedTrip
	err   error
}

func (f *fakeStore) CreateTrip(ctx context.Context, trip models.GeneratedTrip) error {
	if f.err != nil {
		return f.err
	}
	f.trips = append(f.trips, trip)
	return nil
}

func str(s string) *string       { return &s }
func num(n int) *int             { return &n }
func list(s ...string) *[]string { return &s }
func boolp(b bool) *bool         { return &b }

func reviewReady(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	s.Update(DraftPatch{Name: str("Weekend Trip"), Travelers: num(2)})
	if err := s.Next(); err != nil {
		t.Fatalf("basics: %v", err)
	}
	s.Update(DraftPatch{StartDate: str("2025-12-01"), EndDate: str("2025-12-03")})
	if err := s.Next(); err != nil {
		t.Fatalf("dates: %v", err)
	}
	s.Update(DraftPatch{Interests: list("Beaches")})
	if err := s.Next(); err != nil {
		t.Fatalf("preferences: %v", err)
	}
	if s.Step() != StepReview {
		t.Fatalf("expected review, at %s", s.Step())
	}
	return s
}

func TestDefaults(t *testing.T) {
	d := NewSession().Draft()
	if d.Type != models.TripSolo || d.Travelers != 1 || d.BudgetAmount != 5000 ||
		d.Pace != models.PaceBalanced || len(d.Interests) != 2 {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}

func TestBasicsGuard(t *testing.T) {
	s := NewSession()
	s.Update(DraftPatch{Name: str("   ")})

	err := s.Next()
	if err == nil || err.Error() != "Please enter a trip name." {
		t.Fatalf("got %v", err)
	}
	if s.Step() != StepBasics {
		t.Fatal("step must not advance on guard failure")
	}

	s.Update(DraftPatch{Name: str("Weekend Trip"), Travelers: num(0)})
	err = s.Next()
	if err == nil || err.Error() != "At least one traveler is required." {
		t.Fatalf("got %v", err)
	}
	if s.Step() != StepBasics {
		t.Fatal("step must not advance on guard failure")
	}
}

func TestDatesGuard(t *testing.T) {
	s := NewSession()
	s.Update(DraftPatch{Name: str("Weekend Trip")})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}

	if err := s.Next(); err == nil {
		t.Fatal("unset dates must be rejected")
	}

	s.Update(DraftPatch{StartDate: str("2025-06-10"), EndDate: str("2025-06-05")})
	err := s.Next()
	if err == nil || err.Error() != "End date cannot be before start date." {
		t.Fatalf("got %v", err)
	}
	if s.Step() != StepDates {
		t.Fatal("step must not advance on guard failure")
	}

	// equal dates are a valid single-day trip
	s.Update(DraftPatch{StartDate: str("2025-06-10"), EndDate: str("2025-06-10")})
	if err := s.Next(); err != nil {
		t.Fatalf("equal dates should pass: %v", err)
	}
}

func TestPreferencesGuard(t *testing.T) {
	s := NewSession()
	s.Update(DraftPatch{Name: str("Weekend Trip")})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}
	s.Update(DraftPatch{StartDate: str("2025-12-01"), EndDate: str("2025-12-03")})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}

	s.Update(DraftPatch{Interests: list()})
	err := s.Next()
	if err == nil || err.Error() != "Select at least one interest." {
		t.Fatalf("got %v", err)
	}
	if s.Step() != StepPreferences {
		t.Fatal("step must not advance on guard failure")
	}
}

func TestBackNeverValidates(t *testing.T) {
	s := NewSession()
	s.Update(DraftPatch{Name: str("Weekend Trip")})
	if err := s.Next(); err != nil {
		t.Fatal(err)
	}

	// make the previous step's data invalid, going back must still work
	s.Update(DraftPatch{Name: str("")})
	s.Back()
	if s.Step() != StepBasics {
		t.Fatalf("back should land on basics, got %s", s.Step())
	}

	s.Back()
	if s.Step() != StepBasics {
		t.Fatal("back at basics should stay put")
	}
}

func TestReviewSections(t *testing.T) {
	s := reviewReady(t)
	s.Update(DraftPatch{TravelingWithKids: boolp(true)})

	sections := s.Review()
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}

	steps := map[string]string{
		"Trip":          "basics",
		"Dates":         "dates",
		"Budget & pace": "preferences",
		"Accessibility": "preferences",
	}
	for _, sec := range sections {
		if want := steps[sec.Title]; sec.Step != want {
			t.Fatalf("section %q points at step %q, want %q", sec.Title, sec.Step, want)
		}
		if len(sec.Items) == 0 {
			t.Fatalf("section %q is empty", sec.Title)
		}
	}

	trip := sections[0]
	if trip.Items[0].Value != "Weekend Trip" {
		t.Fatalf("name = %q", trip.Items[0].Value)
	}
	access := sections[3]
	if access.Items[1].Label != "Traveling with kids" || access.Items[1].Value != "Yes" {
		t.Fatalf("got %+v", access.Items[1])
	}
}

func TestJumpBack(t *testing.T) {
	s := reviewReady(t)

	// forward jumps are refused
	s.JumpBack(StepReview)
	if s.Step() != StepReview {
		t.Fatalf("at %s", s.Step())
	}

	s.JumpBack(StepBasics)
	if s.Step() != StepBasics {
		t.Fatalf("jump back landed on %s", s.Step())
	}

	if _, ok := stepFromName("dates"); !ok {
		t.Fatal("dates must resolve")
	}
	if _, ok := stepFromName("checkout"); ok {
		t.Fatal("unknown step must not resolve")
	}
}

func TestUpdateClearsError(t *testing.T) {
	s := NewSession()
	s.Update(DraftPatch{Name: str("")})
	_ = s.Next()
	if s.LastError() == "" {
		t.Fatal("expected a pending error")
	}
	s.Update(DraftPatch{Name: str("Weekend Trip")})
	if s.LastError() != "" {
		t.Fatal("update should clear the pending error")
	}
}

func TestGenerateHappyPath(t *testing.T) {
	s := reviewReady(t)
	gen := &fakeGenerator{days: []models.Day{
		{DayNumber: 1, Date: "2025-12-01", Activities: []models.Activity{{Place: "Promenade Beach"}, {Place: "Le Café"}}},
		{DayNumber: 2, Date: "2025-12-02", Activities: []models.Activity{{Place: "Matrimandir"}}},
	}}
	store := &fakeStore{}

	trip, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store)
	if err != nil {
		t.Fatal(err)
	}
	if len(store.trips) != 1 {
		t.Fatalf("exactly one trip must be persisted, got %d", len(store.trips))
	}
	if trip.Status != "confirmed" {
		t.Fatalf("status = %q", trip.Status)
	}
	if trip.PlaceCount != 3 {
		t.Fatalf("place count = %d, want sum of activities (3)", trip.PlaceCount)
	}
	if trip.UserID != "u1" {
		t.Fatalf("owner = %q", trip.UserID)
	}

	// the draft is consumed; a second generation is refused
	if _, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store); !errors.Is(err, ErrDraftConsumed) {
		t.Fatalf("got %v, want ErrDraftConsumed", err)
	}
}

func TestGenerateRequiresIdentity(t *testing.T) {
	s := reviewReady(t)
	gen := &fakeGenerator{}
	store := &fakeStore{}

	_, err := s.Generate(context.Background(), models.Identity{}, gen, store)
	var authErr *models.AuthRequiredError
	if !errors.As(err, &authErr) {
		t.Fatalf("got %v, want AuthRequiredError", err)
	}
	if atomic.LoadInt32(&gen.calls) != 0 {
		t.Fatal("gateway must not be called without an identity")
	}
}

func TestGenerateSingleFlight(t *testing.T) {
	s := reviewReady(t)
	gen := &fakeGenerator{
		days:    []models.Day{{DayNumber: 1, Activities: []models.Activity{{Place: "Promenade Beach"}}}},
		release: make(chan struct{}),
	}
	store := &fakeStore{}

	done := make(chan error, 1)
	go func() {
		_, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store)
		done <- err
	}()

	// wait for the first call to reach the gateway
	for atomic.LoadInt32(&gen.calls) == 0 {
		time.Sleep(time.Millisecond)
	}

	_, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store)
	if !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("second click: got %v, want ErrGenerationInFlight", err)
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	if got := atomic.LoadInt32(&gen.calls); got != 1 {
		t.Fatalf("gateway called %d times, want 1", got)
	}
}

func TestGenerateFailureKeepsDraft(t *testing.T) {
	s := reviewReady(t)
	gen := &fakeGenerator{err: &models.GenerationError{Reason: "network unreachable"}}
	store := &fakeStore{}

	before := s.Draft()
	_, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store)
	var genErr *models.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %v, want GenerationError", err)
	}

	if len(store.trips) != 0 {
		t.Fatal("nothing must be persisted on gateway failure")
	}
	if s.Step() != StepReview {
		t.Fatal("step must survive a failed generation")
	}
	after := s.Draft()
	if before.Name != after.Name || before.StartDate != after.StartDate {
		t.Fatal("draft must survive a failed generation")
	}
	if s.LastError() == "" {
		t.Fatal("the failure message should be recorded for display")
	}

	// manual retry works after the failure
	gen.err = nil
	gen.days = []models.Day{{DayNumber: 1, Activities: []models.Activity{{Place: "Promenade Beach"}}}}
	if _, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(store.trips) != 1 {
		t.Fatal("retry should persist exactly one trip")
	}
}

func TestGenerateStoreFailure(t *testing.T) {
	s := reviewReady(t)
	gen := &fakeGenerator{days: []models.Day{{DayNumber: 1}}}
	store := &fakeStore{err: errors.New("write timeout")}

	_, err := s.Generate(context.Background(), models.Identity{UserID: "u1"}, gen, store)
	var perr *models.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want PersistenceError", err)
	}
	if s.Step() != StepReview {
		t.Fatal("step must survive a failed write")
	}
}
