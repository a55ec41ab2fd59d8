package data_masking

import "github.com/NeuralTrust/TrustDesk/pkg/pii_entities"

type DataMaskingData struct {
	Masked bool           `json:"masked"`
	Events []MaskingEvent `json:"events"`
}

// MaskingEvent never carries the original value: only the category and how
// many spans were replaced.
type MaskingEvent struct {
	Entity      pii_entities.Entity `json:"entity"`
	Occurrences int                 `json:"occurrences"`
}

// Entities returns the categories found, deduplicated and sorted.
func (d DataMaskingData) Entities() []pii_entities.Entity {
	entities := make([]pii_entities.Entity, 0, len(d.Events))
	for _, evt := range d.Events {
		entities = append(entities, evt.Entity)
	}
	return pii_entities.SortedUnique(entities)
}
