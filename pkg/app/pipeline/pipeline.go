package pipeline

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustDesk/pkg/app/payload"
	"github.com/NeuralTrust/TrustDesk/pkg/app/reasoning"
	"github.com/NeuralTrust/TrustDesk/pkg/common"
	"github.com/NeuralTrust/TrustDesk/pkg/domain/classification"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
	"github.com/sirupsen/logrus"
)

const BlockedReply = "⚠️ Votre message contient des données très sensibles (IBAN/NIR/carte). " +
	"Merci de les retirer avant de continuer."

type Request struct {
	Message        string
	Attachment     []byte
	AttachmentName string
}

type Result struct {
	Reply          string                 `json:"reply"`
	Classification *classification.Record `json:"classification"`
	PIIFound       []pii_entities.Entity  `json:"pii_found"`
	Blocked        bool                   `json:"blocked"`
	BlockReason    *string                `json:"block_reason"`
}

//go:generate mockery --name=Orchestrator --dir=. --output=./mocks --filename=orchestrator_mock.go --case=underscore --with-expecter
type Orchestrator interface {
	Process(ctx context.Context, req Request) (*Result, error)
}

type orchestrator struct {
	logger   *logrus.Logger
	preparer payload.Preparer
	gateway  reasoning.Gateway
}

func NewOrchestrator(
	logger *logrus.Logger,
	preparer payload.Preparer,
	gateway reasoning.Gateway,
) Orchestrator {
	return &orchestrator{
		logger:   logger,
		preparer: preparer,
		gateway:  gateway,
	}
}

// Process sanitizes the message and, unless the block policy stops it, asks
// the reasoning service for a reply and then for a classification of the
// exchange. Only sanitized text is ever sent.
func (o *orchestrator) Process(ctx context.Context, req Request) (*Result, error) {
	log := o.logger.WithFields(logrus.Fields{
		"request_id":     requestID(ctx),
		"message_len":    len(req.Message),
		"attachment_len": len(req.Attachment),
	})

	safe := o.preparer.Prepare(ctx, payload.Input{
		Message:        req.Message,
		Attachment:     req.Attachment,
		AttachmentName: req.AttachmentName,
	})
	log = log.WithFields(logrus.Fields{
		"pii_found": pii_entities.Labels(safe.PIIFound),
		"blocked":   safe.Blocked,
	})

	if safe.Blocked {
		prometheus.RecordMessage(prometheus.OutcomeBlocked, safe.PIIFound)
		log.Warn("message blocked by security policy")
		return &Result{
			Reply:          BlockedReply,
			Classification: classification.SecurityBlockRecord(),
			PIIFound:       safe.PIIFound,
			Blocked:        true,
			BlockReason:    safe.BlockReason,
		}, nil
	}

	reply, err := o.gateway.GenerateReply(ctx, safe.Text)
	if err != nil {
		prometheus.RecordMessage(prometheus.OutcomeError, safe.PIIFound)
		log.WithError(err).Error("failed to generate reply")
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	record, err := o.gateway.Classify(ctx, classificationInput(safe.Text, reply))
	if err != nil {
		prometheus.RecordMessage(prometheus.OutcomeError, safe.PIIFound)
		log.WithError(err).Error("failed to classify message")
		return nil, fmt.Errorf("failed to classify message: %w", err)
	}

	prometheus.RecordMessage(prometheus.OutcomeDispatched, safe.PIIFound)
	log.WithFields(logrus.Fields{
		"reply_len": len(reply),
		"motif":     record.Motive,
	}).Info("message processed")

	return &Result{
		Reply:          reply,
		Classification: record,
		PIIFound:       safe.PIIFound,
		Blocked:        false,
		BlockReason:    nil,
	}, nil
}

func classificationInput(request, reply string) string {
	return "DEMANDE CLIENT:\n" + request + "\n\nREPONSE ASSISTANT:\n" + reply
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(common.RequestIDContextKey).(string); ok {
		return id
	}
	return ""
}
