package chatbot

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// Provider produces a reply for a single user query.
type Provider interface {
	Reply(ctx context.Context, query string) (string, error)
}

const systemPrompt = "You are VibeWealth's personal finance assistant. Answer briefly and practically. " +
	"You cannot see the user's accounts; ask for figures when you need them."

var errNoChoices = errors.New("no response from model")

type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (p *OpenAIProvider) Reply(ctx context.Context, query string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// EchoProvider answers without a model. It is used when no API key is set.
type EchoProvider struct{}

func (EchoProvider) Reply(_ context.Context, query string) (string, error) {
	return "You said: " + query, nil
}
