package assistant

import (
	"context"
	"errors"
	"testing"

	"pondilore/models"
)

type fakeCache struct {
	answers map[string]string
	setErr  error
	gets    int
	sets    int
}

func (f *fakeCache) Get(ctx context.Context, q string) (string, bool) {
	f.gets++
	a, ok := f.answers[q]
	return a, ok
}

func (f *fakeCache) Set(ctx context.Context, q, a string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.answers[q] = a
	return nil
}

type fakeGateway struct {
	answer string
	err    error
	calls  int
}

func (f *fakeGateway) GenerateItinerary(ctx context.Context, draft models.TripDraft) ([]models.Day, error) {
	return nil, nil
}

func (f *fakeGateway) Complete(ctx context.Context, prompt, system string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func (f *fakeGateway) CompleteStream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)
	close(chunks)
	return chunks, errs
}

func newFakes() (*fakeCache, *fakeGateway, *Resolver) {
	cache := &fakeCache{answers: make(map[string]string)}
	gw := &fakeGateway{answer: "generated answer"}
	return cache, gw, NewResolver(cache, gw)
}

func TestKnowledgeShortCircuit(t *testing.T) {
	cache, gw, r := newFakes()

	a, err := r.Resolve(context.Background(), "What is the best time to visit Puducherry?")
	if err != nil {
		t.Fatal(err)
	}
	if a.Source != SourceKnowledge {
		t.Fatalf("source = %q", a.Source)
	}
	if cache.gets != 0 || gw.calls != 0 {
		t.Fatal("knowledge hit must skip cache and gateway")
	}
}

func TestCacheShortCircuit(t *testing.T) {
	cache, gw, r := newFakes()
	cache.answers["where can i park in white town"] = "cached answer"

	a, err := r.Resolve(context.Background(), "Where can I park in White Town")
	if err != nil {
		t.Fatal(err)
	}
	if a.Source != SourceCache || a.Text != "cached answer" {
		t.Fatalf("got %+v", a)
	}
	if gw.calls != 0 {
		t.Fatal("cache hit must skip the gateway")
	}
}

func TestGatewayFallbackWritesCache(t *testing.T) {
	cache, gw, r := newFakes()

	a, err := r.Resolve(context.Background(), "Which bookshop sells French novels?")
	if err != nil {
		t.Fatal(err)
	}
	if a.Source != SourceAI || a.Text != "generated answer" {
		t.Fatalf("got %+v", a)
	}
	if gw.calls != 1 {
		t.Fatalf("gateway calls = %d", gw.calls)
	}
	if cache.answers["which bookshop sells french novels?"] != "generated answer" {
		t.Fatal("answer should be written back to the cache")
	}
}

func TestCacheWriteFailureIsSwallowed(t *testing.T) {
	cache, _, r := newFakes()
	cache.setErr = errors.New("redis down")

	a, err := r.Resolve(context.Background(), "Which bookshop sells French novels?")
	if err != nil {
		t.Fatalf("cache write failure must not surface: %v", err)
	}
	if a.Source != SourceAI {
		t.Fatalf("source = %q", a.Source)
	}
}

func TestGatewayErrorSurfaces(t *testing.T) {
	cache, gw, r := newFakes()
	gw.err = &models.GenerationError{Reason: "rate limited"}

	_, err := r.Resolve(context.Background(), "Which bookshop sells French novels?")
	var genErr *models.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("got %v, want GenerationError", err)
	}
	if cache.sets != 0 {
		t.Fatal("no cache write on gateway failure")
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize("  What's the BEST time, to visit?! "); got != "whats the best time to visit" {
		t.Fatalf("normalize = %q", got)
	}
}
