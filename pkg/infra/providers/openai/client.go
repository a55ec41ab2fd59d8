package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/singleflight"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
	options    []option.RequestOption
}

func NewOpenaiClient(opts ...option.RequestOption) providers.Client {
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

	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey)

	resp, err := openaiClient.Chat.Completions.New(ctx, newParams(config, prompt))
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Model:    resp.Model,
		Response: providers.JoinText([]string{resp.Choices[0].Message.Content}),
		Usage: providers.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// newParams maps the provider config to a chat completion request. A response
// schema becomes a strict json_schema response format.
func newParams(config *providers.Config, prompt string) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if system := providers.SystemText(config); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Model:       config.Model,
		Messages:    messages,
		MaxTokens:   openai.Int(providers.MaxTokens(config)),
		Temperature: openai.Float(config.Temperature),
	}

	if schema := config.ResponseSchema; schema != nil {
		jsonSchema := openai.ResponseFormatJSONSchemaJSONSchemaParam{
			Name:   schema.Name,
			Schema: schema.Schema,
			Strict: openai.Bool(true),
		}
		if schema.Description != "" {
			jsonSchema.Description = openai.String(schema.Description)
		}
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: jsonSchema},
		}
	}
	return params
}

func (c *client) getOrCreateClient(apiKey string) *openai.Client {
	if v, ok := c.clientPool.Load(apiKey); ok {
		if client, ok := v.(*openai.Client); ok {
			return client
		}
	}
	v, err, _ := c.sf.Do(apiKey, func() (any, error) {
		if v2, ok := c.clientPool.Load(apiKey); ok {
			return v2, nil
		}
		cli := c.newSDKClient(apiKey)
		c.clientPool.Store(apiKey, cli)
		return cli, nil
	})
	if err != nil {
		return c.newSDKClient(apiKey)
	}
	if client, ok := v.(*openai.Client); ok {
		return client
	}
	return c.newSDKClient(apiKey)
}

func (c *client) newSDKClient(apiKey string) *openai.Client {
	cli := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, c.options...)...)
	return &cli
}
