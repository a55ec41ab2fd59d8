package data_masking

import (
	"github.com/NeuralTrust/TrustDesk/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
	"github.com/sirupsen/logrus"
)

const PluginName = "data_masking"

type Redactor interface {
	Redact(text string) (string, []pii_entities.Entity)
}

type Masker struct {
	logger *logrus.Logger
	rules  []pii_entities.Rule
}

// NewMasker returns a masker using the default French rule table.
func NewMasker(logger *logrus.Logger) *Masker {
	return NewMaskerWithRules(logger, pii_entities.Rules)
}

func NewMaskerWithRules(logger *logrus.Logger, rules []pii_entities.Rule) *Masker {
	return &Masker{
		logger: logger,
		rules:  rules,
	}
}

// Redact replaces every rule match with its placeholder and returns the masked
// text together with the categories found, deduplicated and sorted.
func (m *Masker) Redact(text string) (string, []pii_entities.Entity) {
	masked, data := m.Mask(text)
	return masked, data.Entities()
}

// Mask applies the rules in order. A rule is recorded when it matches the text
// as left by the previous rules.
func (m *Masker) Mask(content string) (string, DataMaskingData) {
	var events []MaskingEvent
	maskedContent := content

	for _, rule := range m.rules {
		matches := rule.Pattern.FindAllStringIndex(maskedContent, -1)
		if len(matches) == 0 {
			continue
		}
		events = append(events, MaskingEvent{
			Entity:      rule.Entity,
			Occurrences: len(matches),
		})
		prometheus.RecordPIIOccurrences(rule.Entity, len(matches))
		maskedContent = rule.Pattern.ReplaceAllString(maskedContent, rule.Replacement)
	}

	data := DataMaskingData{
		Masked: len(events) > 0,
		Events: events,
	}

	m.logger.WithFields(logrus.Fields{
		"plugin":    PluginName,
		"pii_found": pii_entities.Labels(data.Entities()),
		"text_len":  len(maskedContent),
	}).Debug("redaction completed")

	return maskedContent, data
}
