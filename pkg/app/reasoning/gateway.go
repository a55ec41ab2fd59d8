package reasoning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustDesk/pkg/domain/classification"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

const (
	MissingCredentialReply = "⚠️ Impossible d'appeler l'assistant : clé API manquante."

	replyTemperature    = 0.3
	replyMaxTokens      = 500
	classifyTemperature = 0
	classifyMaxTokens   = 300
)

var ErrTransport = errors.New("reasoning service call failed")

//go:generate mockery --name=Gateway --dir=. --output=./mocks --filename=gateway_mock.go --case=underscore --with-expecter
type Gateway interface {
	GenerateReply(ctx context.Context, sanitizedText string) (string, error)
	Classify(ctx context.Context, sanitizedText string) (*classification.Record, error)
}

type Config struct {
	APIKey string
	Model  string
}

type gateway struct {
	logger  *logrus.Logger
	client  providers.Client
	breaker httpx.CircuitBreaker
	config  Config
}

// NewGateway builds the gateway. breaker may be nil. Without an API key the
// gateway runs in degraded mode and never calls client.
func NewGateway(
	logger *logrus.Logger,
	client providers.Client,
	breaker httpx.CircuitBreaker,
	config Config,
) Gateway {
	return &gateway{
		logger:  logger,
		client:  client,
		breaker: breaker,
		config:  config,
	}
}

func (g *gateway) GenerateReply(ctx context.Context, sanitizedText string) (string, error) {
	if g.config.APIKey == "" {
		g.logger.Warn("reasoning api key missing, returning degraded reply")
		return MissingCredentialReply, nil
	}

	resp, err := g.ask(ctx, prometheus.CallReply, &providers.Config{
		Credentials:  providers.Credentials{ApiKey: g.config.APIKey},
		Model:        g.config.Model,
		MaxTokens:    replyMaxTokens,
		Temperature:  replyTemperature,
		SystemPrompt: replySystemPrompt,
		Instructions: replyInstructions,
	}, sanitizedText)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (g *gateway) Classify(ctx context.Context, sanitizedText string) (*classification.Record, error) {
	if g.config.APIKey == "" {
		g.logger.Warn("reasoning api key missing, returning fallback classification")
		return classification.MissingCredentialRecord(), nil
	}

	resp, err := g.ask(ctx, prometheus.CallClassify, &providers.Config{
		Credentials:  providers.Credentials{ApiKey: g.config.APIKey},
		Model:        g.config.Model,
		MaxTokens:    classifyMaxTokens,
		Temperature:  classifyTemperature,
		SystemPrompt: classifySystemPrompt,
		Instructions: classifyInstructions,
		ResponseSchema: &providers.ResponseSchema{
			Name:        classification.SchemaName,
			Description: classification.SchemaDescription,
			Schema:      classification.Schema(),
		},
	}, classifyPromptPrefix+sanitizedText)
	if err != nil {
		return nil, err
	}

	record, err := classification.Decode([]byte(resp.Response))
	if err != nil {
		g.logger.WithFields(logrus.Fields{
			"call":         prometheus.CallClassify,
			"response_len": len(resp.Response),
		}).WithError(err).Error("failed to decode classification")
		return nil, fmt.Errorf("failed to decode classification: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"motif":     record.Motive,
		"domaine":   record.Domain,
		"confiance": record.Confidence,
	}).Info("classification completed")
	return record, nil
}

// ask performs one provider call through the breaker. Every failure is wrapped
// in ErrTransport.
func (g *gateway) ask(
	ctx context.Context,
	call string,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	log := g.logger.WithFields(logrus.Fields{
		"call":      call,
		"model":     config.Model,
		"input_len": len(prompt),
	})

	var resp *providers.CompletionResponse
	do := func() error {
		var err error
		resp, err = g.client.Ask(ctx, config, prompt)
		return err
	}

	start := time.Now()
	var err error
	if g.breaker != nil {
		err = g.breaker.Execute(do)
	} else {
		err = do()
	}
	elapsed := time.Since(start)
	prometheus.ObserveReasoningCall(call, err, elapsed)

	if err != nil {
		log.WithError(err).Error("reasoning call failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, call, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: %s: empty response", ErrTransport, call)
	}

	log.WithFields(logrus.Fields{
		"output_len":   len(resp.Response),
		"total_tokens": resp.Usage.TotalTokens,
		"latency_ms":   elapsed.Milliseconds(),
	}).Debug("reasoning call completed")
	return resp, nil
}
