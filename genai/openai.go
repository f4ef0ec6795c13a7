package genai

import (
	"context"
	"log"
	"os"

	"pondilore/models"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultModel = openai.ChatModelGPT4oMini

// OpenAI implements Gateway on the OpenAI chat completions API. A missing
// OPENAI_API_KEY leaves the gateway unconfigured: every call then fails
// with a configuration message instead of crashing the process.
type OpenAI struct {
	client     openai.Client
	model      openai.ChatModel
	configured bool
}

func NewOpenAI() *OpenAI {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Println("OPENAI_API_KEY not set; itinerary generation and chat are disabled")
		return &OpenAI{}
	}

	return &OpenAI{
		client:     openai.NewClient(option.WithAPIKey(key)),
		model:      defaultModel,
		configured: true,
	}
}

// Configured reports whether the upstream key was supplied.
func (g *OpenAI) Configured() bool { return g.configured }

func (g *OpenAI) notConfigured() *models.GenerationError {
	return &models.GenerationError{Reason: "The assistant is not configured on this server"}
}

func (g *OpenAI) GenerateItinerary(ctx context.Context, draft models.TripDraft) ([]models.Day, error) {
	if !g.configured {
		return nil, g.notConfigured()
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(itinerarySystemPrompt),
			openai.UserMessage(itineraryPrompt(draft)),
		},
	})
	if err != nil {
		return nil, &models.GenerationError{Reason: "Itinerary generation failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &models.GenerationError{Reason: "The generation service returned an empty result"}
	}

	days, err := ParseItinerary(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return days, nil
}

func (g *OpenAI) Complete(ctx context.Context, prompt, system string) (string, error) {
	if !g.configured {
		return "", g.notConfigured()
	}

	msgs := []openai.ChatCompletionMessageParamUnion{}
	if system != "" {
		msgs = append(msgs, openai.SystemMessage(system))
	}
	msgs = append(msgs, openai.UserMessage(prompt))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    g.model,
		Messages: msgs,
	})
	if err != nil {
		return "", &models.GenerationError{Reason: "Chat completion failed", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &models.GenerationError{Reason: "The generation service returned an empty result"}
	}
	return resp.Choices[0].Message.Content, nil
}

func (g *OpenAI) CompleteStream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	chunks := make(chan string)
	errs := make(chan error, 1)

	if !g.configured {
		close(chunks)
		errs <- g.notConfigured()
		return chunks, errs
	}

	go func() {
		defer close(chunks)

		stream := g.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
			Model: g.model,
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(ChatSystemPrompt),
				openai.UserMessage(prompt),
			},
		})
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			if delta := chunk.Choices[0].Delta.Content; delta != "" {
				select {
				case chunks <- delta:
				case <-ctx.Done():
					errs <- &models.GenerationError{Reason: "Chat stream interrupted", Err: ctx.Err()}
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			errs <- &models.GenerationError{Reason: "Chat stream failed", Err: err}
		}
	}()

	return chunks, errs
}
