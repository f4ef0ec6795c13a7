package genai

import (
	"context"

	"pondilore/models"
)

// Gateway is the single boundary to the generative text collaborator. It is
// used both for itinerary structuring and for open-ended chat; every
// failure mode (network, rate limiting, malformed result) surfaces as a
// *models.GenerationError and is never retried here.
type Gateway interface {
	GenerateItinerary(ctx context.Context, draft models.TripDraft) ([]models.Day, error)
	Complete(ctx context.Context, prompt, system string) (string, error)
	// CompleteStream emits the response as incremental text chunks with no
	// guarantee of chunk boundaries aligning to words. The text channel is
	// closed when the stream ends; a terminal failure arrives on the error
	// channel.
	CompleteStream(ctx context.Context, prompt string) (<-chan string, <-chan error)
}
