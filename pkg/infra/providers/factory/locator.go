package factory

import (
	"fmt"

	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers/anthropic"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers/gemini"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct{}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderGoogle, ProviderGemini:
		return gemini.NewGeminiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
