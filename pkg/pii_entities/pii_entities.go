// Package pii_entities provides the PII categories detected in policyholder
// messages and the ordered rule table used to mask them. This package is shared
// between the data_masking redactor and the block policy.
package pii_entities

import (
	"regexp"
	"sort"
)

// Entity represents a category of sensitive data that can be detected.
// The string value is the label exposed to callers.
type Entity string

const (
	Email      Entity = "email"
	Phone      Entity = "telephone"
	IBAN       Entity = "iban"
	FrenchNIR  Entity = "nir"
	CreditCard Entity = "carte_bancaire"
	PostalCode Entity = "code_postal"
	Surname    Entity = "nom"
	GivenName  Entity = "prenom"
	FullName   Entity = "nom_prenom"
)

// Rule masks every match of Pattern with Replacement. Replacement may use
// regexp template references such as ${1}.
type Rule struct {
	Entity      Entity
	Pattern     *regexp.Regexp
	Replacement string
}

// nameTail is a capitalised word run, 2 to 41 characters, used after a
// structural cue (label, civility, self-introduction). It must end on a letter:
// RE2 \b is ASCII only and would stop before a trailing accented letter.
const nameTail = `[A-ZÀ-ÖØ-Ý](?:[A-Za-zÀ-ÖØ-öø-ÿ' -]{0,39}[A-Za-zÀ-ÖØ-öø-ÿ])`

// Rules is evaluated top to bottom against the current text. Structured
// financial identifiers run before the generic digit runs so that an IBAN is
// never half-consumed by the card or postal code patterns.
var Rules = []Rule{
	{
		Entity:      Email,
		Pattern:     regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`),
		Replacement: "[EMAIL]",
	},
	{
		Entity:      Phone,
		Pattern:     regexp.MustCompile(`(?:\+33\s?|\b0)[1-9](?:[\s.-]?\d{2}){4}\b`),
		Replacement: "[TEL]",
	},
	{
		Entity:      IBAN,
		Pattern:     regexp.MustCompile(`(?i)\b[A-Z]{2}\d{2}(?:\s?[A-Z0-9]{4}){3,7}\s?[A-Z0-9]{1,4}\b`),
		Replacement: "[IBAN]",
	},
	{
		Entity:      FrenchNIR,
		Pattern:     regexp.MustCompile(`\b[12]\d{2}(?:0[1-9]|1[0-2])(?:\d{2}|2[ABab])\d{3}\d{3}\d{2}\b`),
		Replacement: "[NIR]",
	},
	{
		Entity:      CreditCard,
		Pattern:     regexp.MustCompile(`\b(?:\d[ -]*?){13,19}\b`),
		Replacement: "[NUM_CARTE]",
	},
	{
		Entity:      PostalCode,
		Pattern:     regexp.MustCompile(`\b\d{5}\b`),
		Replacement: "[CODE_POSTAL]",
	},
	{
		// "Prénom :" must not be read as "Nom :", hence the explicit non-letter prefix.
		Entity:      Surname,
		Pattern:     regexp.MustCompile(`(?im)(^|[^\p{L}\p{N}_])nom\s*:\s*` + nameTail),
		Replacement: "${1}Nom : [NOM]",
	},
	{
		Entity:      GivenName,
		Pattern:     regexp.MustCompile(`(?im)\bpr[ée]nom\s*:\s*` + nameTail),
		Replacement: "Prénom : [PRENOM]",
	},
	{
		Entity:      Surname,
		Pattern:     regexp.MustCompile(`(?i)\b(?:m\.|mr|monsieur|mme|madame|mlle|mademoiselle)\s+` + nameTail),
		Replacement: "[CIVILITE] [NOM]",
	},
	{
		Entity:      FullName,
		Pattern:     regexp.MustCompile(`(?i)\bje\s+m['’ ]appelle\s+` + nameTail + `(?:\s+` + nameTail + `)?`),
		Replacement: "Je m'appelle [PRENOM] [NOM]",
	},
}

// AllEntities contains every category a rule can report.
var AllEntities = map[Entity]bool{
	Email:      true,
	Phone:      true,
	IBAN:       true,
	FrenchNIR:  true,
	CreditCard: true,
	PostalCode: true,
	Surname:    true,
	GivenName:  true,
	FullName:   true,
}

// SortedUnique returns the deduplicated entities in lexical order.
// The result is never nil.
func SortedUnique(entities []Entity) []Entity {
	seen := make(map[Entity]struct{}, len(entities))
	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Labels converts entities to their string labels.
func Labels(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = string(e)
	}
	return out
}
