package anthropic

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type client struct {
	clientPool *sync.Map
	options    []option.RequestOption
}

// NewAnthropicClient returns a client whose SDK instances are pooled per API
// key. opts are applied to every SDK instance.
func NewAnthropicClient(opts ...option.RequestOption) providers.Client {
	return &client{
		clientPool: &sync.Map{},
		options:    opts,
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey)

	model := anthropic.Model(config.Model)
	params := anthropic.MessageNewParams{
		Model: model,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		MaxTokens:   providers.MaxTokens(config),
		Temperature: anthropic.Float(config.Temperature),
	}

	if system := providers.SystemText(config); system != "" {
		params.System = []anthropic.TextBlockParam{
			{
				Text: system,
				Type: "text",
			},
		}
	}

	message, err := anthropicClient.Messages.New(ctx, params, structuredOutput(config.ResponseSchema)...)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	var texts []string
	var toolInput string
	for _, content := range message.Content {
		switch content.Type {
		case "text":
			texts = append(texts, content.Text)
		case "tool_use":
			if toolInput == "" && len(content.Input) > 0 {
				toolInput = string(content.Input)
			}
		}
	}

	responseText := providers.JoinText(texts)
	if config.ResponseSchema != nil && toolInput != "" {
		responseText = toolInput
	}

	return &providers.CompletionResponse{
		ID:       message.ID,
		Model:    string(model),
		Response: responseText,
		Usage: providers.Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}, nil
}

// structuredOutput forces a single tool whose input schema is the expected
// document, so the tool input is the structured response.
func structuredOutput(schema *providers.ResponseSchema) []option.RequestOption {
	if schema == nil {
		return nil
	}
	tool := map[string]any{
		"name":         schema.Name,
		"input_schema": schema.Schema,
	}
	if schema.Description != "" {
		tool["description"] = schema.Description
	}
	return []option.RequestOption{
		option.WithJSONSet("tools", []map[string]any{tool}),
		option.WithJSONSet("tool_choice", map[string]any{
			"type": "tool",
			"name": schema.Name,
		}),
	}
}

func (c *client) getOrCreateClient(apiKey string) anthropic.Client {
	if clientVal, ok := c.clientPool.Load(apiKey); ok {
		if client, ok := clientVal.(anthropic.Client); ok {
			return client
		}
	}
	newClient := anthropic.NewClient(
		append([]option.RequestOption{option.WithAPIKey(apiKey)}, c.options...)...,
	)
	c.clientPool.Store(apiKey, newClient)
	return newClient
}
