package anthropic_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers/anthropic"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicClient(t *testing.T) {
	client := anthropic.NewAnthropicClient()
	assert.NotNil(t, client, "NewAnthropicClient should return a non-nil client")
}

func TestAsk_MissingAPIKey(t *testing.T) {
	client := anthropic.NewAnthropicClient()

	config := &providers.Config{
		Model: "claude-sonnet-4-5-20250929",
	}

	resp, err := client.Ask(context.Background(), config, "test prompt")
	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestAsk_MissingModel(t *testing.T) {
	client := anthropic.NewAnthropicClient()

	config := &providers.Config{
		Credentials: providers.Credentials{
			ApiKey: "test-api-key",
		},
	}

	resp, err := client.Ask(context.Background(), config, "test prompt")
	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "model is required")
}

func newTestServer(t *testing.T, captured *map[string]any, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAsk_ForcedToolStructuredOutput(t *testing.T) {
	var body map[string]any
	srv := newTestServer(t, &body, `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5-20250929",
		"content": [
			{"type": "tool_use", "id": "toolu_1", "name": "classification_assure", "input": {"motif": "AUTRE", "confiance": 0.4}}
		],
		"stop_reason": "tool_use",
		"usage": {"input_tokens": 20, "output_tokens": 8}
	}`)
	client := anthropic.NewAnthropicClient(option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: "test-api-key"},
		Model:        "claude-sonnet-4-5-20250929",
		MaxTokens:    300,
		SystemPrompt: "Tu es un classifieur.",
		ResponseSchema: &providers.ResponseSchema{
			Name:        "classification_assure",
			Description: "Classification",
			Schema:      map[string]any{"type": "object"},
		},
	}, "Texte à classifier :\nBonjour")
	require.NoError(t, err)

	assert.Equal(t, "msg_1", resp.ID)
	assert.JSONEq(t, `{"motif":"AUTRE","confiance":0.4}`, resp.Response)
	assert.Equal(t, 28, resp.Usage.TotalTokens)

	tools, ok := body["tools"].([]any)
	require.True(t, ok)
	require.Len(t, tools, 1)
	tool := tools[0].(map[string]any)
	assert.Equal(t, "classification_assure", tool["name"])
	assert.Equal(t, map[string]any{"type": "object"}, tool["input_schema"])
	assert.Equal(t, map[string]any{"type": "tool", "name": "classification_assure"}, body["tool_choice"])
	assert.EqualValues(t, 300, body["max_tokens"])
}

func TestAsk_JoinsTextBlocks(t *testing.T) {
	var body map[string]any
	srv := newTestServer(t, &body, `{
		"id": "msg_2",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5-20250929",
		"content": [
			{"type": "text", "text": "Bonjour,"},
			{"type": "text", "text": "nous vérifions votre dossier. "}
		],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 12}
	}`)
	client := anthropic.NewAnthropicClient(option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))

	resp, err := client.Ask(context.Background(), &providers.Config{
		Credentials: providers.Credentials{ApiKey: "test-api-key"},
		Model:       "claude-sonnet-4-5-20250929",
		Temperature: 0.3,
	}, "Bonjour")
	require.NoError(t, err)

	assert.Equal(t, "Bonjour,\nnous vérifions votre dossier.", resp.Response)
	_, hasTools := body["tools"]
	assert.False(t, hasTools)
	assert.InDelta(t, 0.3, body["temperature"], 1e-9)
}
