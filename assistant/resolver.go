package assistant

import (
	"context"
	"log"
	"strings"

	"pondilore/genai"
)

// Answer sources, in short-circuit order.
const (
	SourceKnowledge = "knowledge"
	SourceCache     = "cache"
	SourceAI        = "ai"
)

type Answer struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// AnswerCache stores previous AI answers keyed by the lower-cased exact
// question text.
type AnswerCache interface {
	Get(ctx context.Context, question string) (string, bool)
	Set(ctx context.Context, question, answer string) error
}

// Resolver answers a question through three ordered short-circuits: the
// curated knowledge table, the answer cache, then the generation gateway.
type Resolver struct {
	Cache   AnswerCache
	Gateway genai.Gateway
}

func NewResolver(cache AnswerCache, gateway genai.Gateway) *Resolver {
	return &Resolver{Cache: cache, Gateway: gateway}
}

func (r *Resolver) Resolve(ctx context.Context, question string) (Answer, error) {
	if text, ok := lookupKnowledge(question); ok {
		return Answer{Text: text, Source: SourceKnowledge}, nil
	}

	key := cacheKey(question)
	if r.Cache != nil {
		if text, ok := r.Cache.Get(ctx, key); ok {
			return Answer{Text: text, Source: SourceCache}, nil
		}
	}

	text, err := r.Gateway.Complete(ctx, question, genai.ChatSystemPrompt)
	if err != nil {
		return Answer{}, err
	}

	if r.Cache != nil {
		// best effort: a failed cache write never reaches the user
		if err := r.Cache.Set(ctx, key, text); err != nil {
			log.Printf("answer cache write failed: %v", err)
		}
	}
	return Answer{Text: text, Source: SourceAI}, nil
}

func cacheKey(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}
