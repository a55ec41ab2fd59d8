package classification

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

var ErrSchemaDecode = errors.New("classification does not match schema")

// Decode parses the raw structured output of the reasoning service. The
// confidence is coerced to a number and clamped to [0, 1]; a value that cannot
// be read as a number counts as 0.
func Decode(raw []byte) (*Record, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaDecode, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: empty object", ErrSchemaDecode)
	}
	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrSchemaDecode, f)
		}
	}

	fields["confiance"] = ClampConfidence(fields["confiance"])

	var record Record
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &record,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaDecode, err)
	}

	if record.RecommendedActions == nil {
		record.RecommendedActions = []Action{}
	}
	if record.InfoToCollect == nil {
		record.InfoToCollect = []string{}
	}
	return &record, nil
}

// ClampConfidence converts v to a float in [0, 1]. Non-numeric values and NaN
// become 0.
func ClampConfidence(v any) float64 {
	c, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(c) {
		return 0
	}
	return math.Max(0, math.Min(1, c))
}
