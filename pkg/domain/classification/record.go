package classification

type Motive string

const (
	MotiveHealthReimbursement Motive = "REMBOURSEMENT_SANTE"
	MotiveQuote               Motive = "DEVIS"
	MotiveContributions       Motive = "COTISATIONS"
	MotiveCertificate         Motive = "ATTESTATION"
	MotiveSickLeave           Motive = "ARRET_TRAVAIL_PREVOYANCE"
	MotiveRetirementInfo      Motive = "RETRAITE_INFO"
	MotiveSituationChange     Motive = "CHANGEMENT_SITUATION"
	MotiveComplaint           Motive = "RECLAMATION"
	MotiveOther               Motive = "AUTRE"
)

type Domain string

const (
	DomainHealth     Domain = "SANTE"
	DomainProvidence Domain = "PREVOYANCE"
	DomainRetirement Domain = "RETRAITE"
	DomainMulti      Domain = "MULTI"
	DomainUnknown    Domain = "INCONNU"
)

type Intent string

const (
	IntentInformation   Intent = "INFORMATION"
	IntentAction        Intent = "ACTION"
	IntentFollowUp      Intent = "SUIVI"
	IntentDispute       Intent = "CONTESTATION"
	IntentSendDocuments Intent = "ENVOI_DOCUMENTS"
)

type Priority string

const (
	PriorityHigh   Priority = "HAUTE"
	PriorityNormal Priority = "NORMALE"
	PriorityLow    Priority = "BASSE"
)

type Tone string

const (
	ToneCalm         Tone = "CALME"
	ToneWorried      Tone = "INQUIET"
	ToneDissatisfied Tone = "MECONTENT"
	ToneUrgent       Tone = "URGENT"
)

type Action string

const (
	ActionSelfCare         Action = "ORIENTER_SELFCARE"
	ActionCreateTicket     Action = "CREER_TICKET_GESTION"
	ActionRequestDocuments Action = "DEMANDER_PIECES"
	ActionRequestInfo      Action = "DEMANDER_INFOS"
	ActionEscalate         Action = "ESCALADER_URGENCE"
)

// Record is the structured classification of a policyholder request.
type Record struct {
	Motive             Motive   `json:"motif"`
	Domain             Domain   `json:"domaine"`
	Intent             Intent   `json:"intention"`
	Priority           Priority `json:"priorite"`
	Tone               Tone     `json:"ton_client"`
	RecommendedActions []Action `json:"actions_recommandees"`
	InfoToCollect      []string `json:"infos_a_collecter"`
	Summary            string   `json:"resume_1_phrase"`
	Confidence         float64  `json:"confiance"`
}

const (
	missingCredentialSummary = "Clé API manquante : classification non réalisée."
	securityBlockSummary     = "Blocage sécurité: données sensibles détectées."
)

// MissingCredentialRecord is returned when no reasoning service key is configured.
func MissingCredentialRecord() *Record {
	return fallbackRecord(missingCredentialSummary)
}

// SecurityBlockRecord is returned when the block policy stops a message.
func SecurityBlockRecord() *Record {
	return fallbackRecord(securityBlockSummary)
}

func fallbackRecord(summary string) *Record {
	return &Record{
		Motive:             MotiveOther,
		Domain:             DomainUnknown,
		Intent:             IntentInformation,
		Priority:           PriorityNormal,
		Tone:               ToneCalm,
		RecommendedActions: []Action{ActionRequestInfo},
		InfoToCollect:      []string{},
		Summary:            summary,
		Confidence:         0,
	}
}
