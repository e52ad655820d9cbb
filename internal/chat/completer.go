package chat

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Completer produces the next assistant reply for a conversation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []Message) (string, error)
}

var (
	_ Completer = (*GenAICompleter)(nil)
	_ Completer = DisabledCompleter{}
)

var ErrCompleterDisabled = errors.New("assistant is not configured")

// DisabledCompleter fails every completion, users get the fallback reply.
type DisabledCompleter struct{}

func (DisabledCompleter) Complete(context.Context, string, []Message) (string, error) {
	return "", ErrCompleterDisabled
}

// GenAICompleter completes conversations with a Gemini model.
type GenAICompleter struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
}

func NewGenAICompleter(ctx context.Context, apiKey string, prompt *Prompt) (*GenAICompleter, error) {
	if apiKey == "" {
		return nil, errors.New("genai api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GenAICompleter{
		client:          client,
		model:           prompt.Model,
		maxOutputTokens: prompt.MaxOutputTokens,
	}, nil
}

func (c *GenAICompleter) Complete(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, toContents(history), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		MaxOutputTokens:   c.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

func toContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}
