package payload

import (
	"context"
	"strings"

	"github.com/NeuralTrust/TrustDesk/pkg/app/policy"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/attachment"
	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
	"github.com/NeuralTrust/TrustDesk/pkg/plugins/data_masking"
	"github.com/NeuralTrust/TrustDesk/pkg/utils"
	"github.com/sirupsen/logrus"
)

const DefaultMaxChars = 8000

// SafePayload is the only form of a message allowed to leave the process.
type SafePayload struct {
	Text        string                `json:"text"`
	PIIFound    []pii_entities.Entity `json:"pii_found"`
	Blocked     bool                  `json:"blocked"`
	BlockReason *string               `json:"block_reason"`
}

type Input struct {
	Message        string
	Attachment     []byte
	AttachmentName string
}

type Options struct {
	HardBlock bool
	MaxChars  int
}

//go:generate mockery --name=Preparer --dir=. --output=./mocks --filename=preparer_mock.go --case=underscore --with-expecter
type Preparer interface {
	Prepare(ctx context.Context, input Input) *SafePayload
}

type preparer struct {
	logger    *logrus.Logger
	redactor  data_masking.Redactor
	extractor attachment.Extractor
	options   Options
}

func NewPreparer(
	logger *logrus.Logger,
	redactor data_masking.Redactor,
	extractor attachment.Extractor,
	options Options,
) Preparer {
	if options.MaxChars <= 0 {
		options.MaxChars = DefaultMaxChars
	}
	return &preparer{
		logger:    logger,
		redactor:  redactor,
		extractor: extractor,
		options:   options,
	}
}

// Prepare builds the sanitized payload: trimmed and bounded message, optional
// attachment excerpt, redaction, then the block decision.
func (p *preparer) Prepare(ctx context.Context, input Input) *SafePayload {
	base := utils.TruncateRunes(strings.TrimSpace(input.Message), p.options.MaxChars)

	if len(input.Attachment) > 0 && input.AttachmentName != "" {
		extracted := p.extractor.Extract(input.Attachment, input.AttachmentName)
		base += "\n\n[EXTRAIT_PIECE_JOINTE: " + input.AttachmentName + "]\n" + extracted
	}

	redacted, found := p.redactor.Redact(base)
	blocked, reason := policy.Decide(found, p.options.HardBlock)

	p.logger.WithFields(logrus.Fields{
		"pii_found": pii_entities.Labels(found),
		"blocked":   blocked,
		"text_len":  len(redacted),
	}).Info("payload prepared")

	return &SafePayload{
		Text:        redacted,
		PIIFound:    found,
		Blocked:     blocked,
		BlockReason: reason,
	}
}
