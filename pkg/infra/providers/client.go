package providers

import (
	"context"
)

type Config struct {
	Credentials    Credentials     `json:"credentials"`
	Model          string          `json:"model"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	SystemPrompt   string          `json:"system_prompt,omitempty"`
	Instructions   []string        `json:"instructions,omitempty"`
	ResponseSchema *ResponseSchema `json:"response_schema,omitempty"`
}

type Credentials struct {
	ApiKey string `json:"api_key"`
}

// ResponseSchema constrains the completion to a JSON document matching Schema.
// Each provider maps it to its own structured output mechanism.
type ResponseSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Schema      map[string]any `json:"schema"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}
