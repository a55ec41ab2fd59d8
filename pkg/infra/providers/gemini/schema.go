package gemini

import (
	"strings"

	"github.com/spf13/cast"
	"google.golang.org/genai"
)

// ToSchema converts a JSON schema document into the subset understood by the
// Gemini API. Keywords without an equivalent, such as additionalProperties,
// are dropped.
func ToSchema(doc map[string]any) *genai.Schema {
	if doc == nil {
		return nil
	}

	schema := &genai.Schema{
		Type:        genai.Type(strings.ToUpper(cast.ToString(doc["type"]))),
		Description: cast.ToString(doc["description"]),
		Enum:        cast.ToStringSlice(doc["enum"]),
		Required:    cast.ToStringSlice(doc["required"]),
	}

	if items, ok := doc["items"].(map[string]any); ok {
		schema.Items = ToSchema(items)
	}

	if properties, ok := doc["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(properties))
		for name, raw := range properties {
			if prop, ok := raw.(map[string]any); ok {
				schema.Properties[name] = ToSchema(prop)
			}
		}
	}

	return schema
}
