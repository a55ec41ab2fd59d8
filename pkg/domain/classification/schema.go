package classification

const (
	SchemaName        = "classification_assure"
	SchemaDescription = "Classification d'une demande d'assuré"
)

var requiredFields = []string{
	"motif",
	"domaine",
	"intention",
	"priorite",
	"ton_client",
	"actions_recommandees",
	"infos_a_collecter",
	"resume_1_phrase",
	"confiance",
}

// Schema returns a fresh JSON schema describing Record. Every field is required
// and no additional property is allowed.
func Schema() map[string]any {
	required := make([]any, len(requiredFields))
	for i, f := range requiredFields {
		required[i] = f
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"motif": enumProperty(
				MotiveHealthReimbursement, MotiveQuote, MotiveContributions, MotiveCertificate,
				MotiveSickLeave, MotiveRetirementInfo, MotiveSituationChange, MotiveComplaint, MotiveOther,
			),
			"domaine":    enumProperty(DomainHealth, DomainProvidence, DomainRetirement, DomainMulti, DomainUnknown),
			"intention":  enumProperty(IntentInformation, IntentAction, IntentFollowUp, IntentDispute, IntentSendDocuments),
			"priorite":   enumProperty(PriorityHigh, PriorityNormal, PriorityLow),
			"ton_client": enumProperty(ToneCalm, ToneWorried, ToneDissatisfied, ToneUrgent),
			"actions_recommandees": map[string]any{
				"type": "array",
				"items": enumProperty(
					ActionSelfCare, ActionCreateTicket, ActionRequestDocuments, ActionRequestInfo, ActionEscalate,
				),
			},
			"infos_a_collecter": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"resume_1_phrase": map[string]any{"type": "string"},
			"confiance":       map[string]any{"type": "number"},
		},
		"required":             required,
		"additionalProperties": false,
	}
}

func enumProperty[T ~string](values ...T) map[string]any {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return map[string]any{
		"type": "string",
		"enum": enum,
	}
}
