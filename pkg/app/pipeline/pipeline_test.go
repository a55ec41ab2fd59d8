package pipeline_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/NeuralTrust/TrustDesk/pkg/app/payload"
	"github.com/NeuralTrust/TrustDesk/pkg/app/pipeline"
	"github.com/NeuralTrust/TrustDesk/pkg/app/reasoning"
	"github.com/NeuralTrust/TrustDesk/pkg/app/reasoning/mocks"
	"github.com/NeuralTrust/TrustDesk/pkg/common"
	"github.com/NeuralTrust/TrustDesk/pkg/domain/classification"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/attachment"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/providers"
	providerMocks "github.com/NeuralTrust/TrustDesk/pkg/infra/providers/mocks"
	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
	"github.com/NeuralTrust/TrustDesk/pkg/plugins/data_masking"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrchestrator(t *testing.T, gateway reasoning.Gateway, hardBlock bool) pipeline.Orchestrator {
	t.Helper()
	logger, _ := test.NewNullLogger()
	preparer := payload.NewPreparer(
		logger,
		data_masking.NewMasker(logger),
		attachment.NewExtractor(logger, attachment.Config{}),
		payload.Options{HardBlock: hardBlock},
	)
	return pipeline.NewOrchestrator(logger, preparer, gateway)
}

func sampleRecord() *classification.Record {
	return &classification.Record{
		Motive:             classification.MotiveHealthReimbursement,
		Domain:             classification.DomainHealth,
		Intent:             classification.IntentFollowUp,
		Priority:           classification.PriorityNormal,
		Tone:               classification.ToneWorried,
		RecommendedActions: []classification.Action{classification.ActionCreateTicket},
		InfoToCollect:      []string{},
		Summary:            "Consultation non remboursée.",
		Confidence:         0.9,
	}
}

func TestProcess_Dispatch(t *testing.T) {
	gateway := mocks.NewGateway(t)
	gateway.EXPECT().
		GenerateReply(mock.Anything, "Je ne suis pas remboursé, écrivez à [EMAIL]").
		Return("Pouvez-vous préciser la date de soins ?", nil).
		Once()
	gateway.EXPECT().
		Classify(mock.Anything, "DEMANDE CLIENT:\nJe ne suis pas remboursé, écrivez à [EMAIL]\n\nREPONSE ASSISTANT:\nPouvez-vous préciser la date de soins ?").
		Return(sampleRecord(), nil).
		Once()

	result, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{
		Message: "Je ne suis pas remboursé, écrivez à jean.dupont@gmail.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pouvez-vous préciser la date de soins ?", result.Reply)
	assert.Equal(t, sampleRecord(), result.Classification)
	assert.Equal(t, []pii_entities.Entity{pii_entities.Email}, result.PIIFound)
	assert.False(t, result.Blocked)
	assert.Nil(t, result.BlockReason)
}

func TestProcess_IBANRedactionOnly(t *testing.T) {
	gateway := mocks.NewGateway(t)
	gateway.EXPECT().GenerateReply(mock.Anything, "Mon IBAN est [IBAN]").Return("Merci.", nil).Once()
	gateway.EXPECT().Classify(mock.Anything, mock.Anything).Return(sampleRecord(), nil).Once()

	result, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{
		Message: "Mon IBAN est FR76 3000 6000 0112 3456 7890 189",
	})

	require.NoError(t, err)
	assert.False(t, result.Blocked)
	assert.Equal(t, []pii_entities.Entity{pii_entities.IBAN}, result.PIIFound)
}

func TestProcess_IBANHardBlock(t *testing.T) {
	gateway := mocks.NewGateway(t)

	result, err := newOrchestrator(t, gateway, true).Process(context.Background(), pipeline.Request{
		Message: "Mon IBAN est FR76 3000 6000 0112 3456 7890 189",
	})

	require.NoError(t, err)
	assert.True(t, result.Blocked)
	require.NotNil(t, result.BlockReason)
	assert.Contains(t, *result.BlockReason, "iban")
	gateway.AssertNotCalled(t, "GenerateReply", mock.Anything, mock.Anything)
	gateway.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestProcess_CardHardBlockMakesNoCall(t *testing.T) {
	gateway := mocks.NewGateway(t)

	result, err := newOrchestrator(t, gateway, true).Process(context.Background(), pipeline.Request{
		Message: "Voici ma carte 4111 1111 1111 1111",
	})

	require.NoError(t, err)
	assert.True(t, result.Blocked)
	assert.Contains(t, result.PIIFound, pii_entities.CreditCard)
	assert.Equal(t, pipeline.BlockedReply, result.Reply)
	assert.Equal(t, classification.SecurityBlockRecord(), result.Classification)
	gateway.AssertNumberOfCalls(t, "GenerateReply", 0)
	gateway.AssertNumberOfCalls(t, "Classify", 0)
}

func TestProcess_MissingCredential(t *testing.T) {
	logger, _ := test.NewNullLogger()
	client := providerMocks.NewClient(t)
	gateway := reasoning.NewGateway(logger, client, nil, reasoning.Config{Model: "claude-sonnet-4-5-20250929"})

	result, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{
		Message: "Bonjour, quelles sont mes garanties ?",
	})

	require.NoError(t, err)
	assert.Equal(t, reasoning.MissingCredentialReply, result.Reply)
	assert.Equal(t, classification.MotiveOther, result.Classification.Motive)
	assert.False(t, result.Blocked)
	assert.Equal(t, []pii_entities.Entity{}, result.PIIFound)
	client.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything, mock.Anything)

	body, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"pii_found":[]`)
	assert.Contains(t, string(body), `"block_reason":null`)
}

func TestProcess_ReplyErrorAborts(t *testing.T) {
	gateway := mocks.NewGateway(t)
	gateway.EXPECT().GenerateReply(mock.Anything, mock.Anything).Return("", reasoning.ErrTransport).Once()

	result, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{Message: "Bonjour"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, reasoning.ErrTransport)
	gateway.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestProcess_ClassifyDecodeError(t *testing.T) {
	gateway := mocks.NewGateway(t)
	gateway.EXPECT().GenerateReply(mock.Anything, mock.Anything).Return("Merci.", nil).Once()
	gateway.EXPECT().Classify(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to decode classification: %w", classification.ErrSchemaDecode)).
		Once()

	result, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{Message: "Bonjour"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, classification.ErrSchemaDecode)
}

func TestProcess_AttachmentReachesGatewayRedacted(t *testing.T) {
	gateway := mocks.NewGateway(t)
	gateway.EXPECT().
		GenerateReply(mock.Anything, "Voir pièce jointe\n\n[EXTRAIT_PIECE_JOINTE: facture.png]\n[Image fournie: OCR désactivé en démo]").
		Return("Merci.", nil).
		Once()
	gateway.EXPECT().Classify(mock.Anything, mock.Anything).Return(sampleRecord(), nil).Once()

	_, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{
		Message:        "Voir pièce jointe",
		Attachment:     []byte{0x89, 0x50, 0x4e, 0x47},
		AttachmentName: "facture.png",
	})
	require.NoError(t, err)
}

func TestProcess_StructuredClassificationEndToEnd(t *testing.T) {
	logger, _ := test.NewNullLogger()
	client := providerMocks.NewClient(t)
	client.EXPECT().
		Ask(mock.Anything, mock.MatchedBy(func(c *providers.Config) bool { return c.ResponseSchema == nil }), "Tel [TEL]").
		Return(&providers.CompletionResponse{Response: "Nous vous rappelons."}, nil).
		Once()
	client.EXPECT().
		Ask(mock.Anything, mock.MatchedBy(func(c *providers.Config) bool { return c.ResponseSchema != nil }),
			"Texte à classifier :\nDEMANDE CLIENT:\nTel [TEL]\n\nREPONSE ASSISTANT:\nNous vous rappelons.").
		Return(&providers.CompletionResponse{Response: `{
			"motif": "AUTRE", "domaine": "INCONNU", "intention": "ACTION", "priorite": "BASSE",
			"ton_client": "CALME", "actions_recommandees": [], "infos_a_collecter": [],
			"resume_1_phrase": "Demande de rappel.", "confiance": "abc"
		}`}, nil).
		Once()

	gateway := reasoning.NewGateway(logger, client, nil, reasoning.Config{APIKey: "k", Model: "m"})
	result, err := newOrchestrator(t, gateway, false).Process(context.Background(), pipeline.Request{Message: "Tel 06 12 34 56 78"})

	require.NoError(t, err)
	assert.Equal(t, "Nous vous rappelons.", result.Reply)
	assert.Equal(t, classification.IntentAction, result.Classification.Intent)
	assert.Equal(t, 0.0, result.Classification.Confidence)
}

func TestProcess_LogsRequestIDWithoutContent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	preparer := payload.NewPreparer(
		logger,
		data_masking.NewMasker(logger),
		attachment.NewExtractor(logger, attachment.Config{}),
		payload.Options{HardBlock: true},
	)
	orchestrator := pipeline.NewOrchestrator(logger, preparer, mocks.NewGateway(t))

	ctx := context.WithValue(context.Background(), common.RequestIDContextKey, "req-42")
	_, err := orchestrator.Process(ctx, pipeline.Request{Message: "Carte 4111 1111 1111 1111"})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "message blocked by security policy", entry.Message)
	assert.Equal(t, "req-42", entry.Data["request_id"])
	for _, e := range hook.AllEntries() {
		for _, v := range e.Data {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, "4111")
			}
		}
	}
}
