package policy

import (
	"strings"

	"github.com/NeuralTrust/TrustDesk/pkg/pii_entities"
)

const blockReasonPrefix = "Données sensibles détectées: "

// highRiskTier lists the categories that terminate a request under hard-block
// mode. It is not configurable at call time.
var highRiskTier = map[pii_entities.Entity]bool{
	pii_entities.IBAN:       true,
	pii_entities.FrenchNIR:  true,
	pii_entities.CreditCard: true,
}

// IsHighRisk reports whether the entity belongs to the blocking tier.
func IsHighRisk(entity pii_entities.Entity) bool {
	return highRiskTier[entity]
}

// Decide maps detected categories to a block decision. With hard block disabled
// the pipeline degrades to redaction only and never blocks.
func Decide(found []pii_entities.Entity, hardBlock bool) (bool, *string) {
	if !hardBlock {
		return false, nil
	}

	var hit []pii_entities.Entity
	for _, entity := range found {
		if IsHighRisk(entity) {
			hit = append(hit, entity)
		}
	}
	if len(hit) == 0 {
		return false, nil
	}

	reason := blockReasonPrefix + strings.Join(pii_entities.Labels(pii_entities.SortedUnique(hit)), ", ")
	return true, &reason
}
