package extraction

import (
	"cloud.google.com/go/vertexai/genai"

	"doc_ingest/internal/domain"
)

var schemaTypes = map[domain.SchemaType]genai.Type{
	domain.TypeString:  genai.TypeString,
	domain.TypeNumber:  genai.TypeNumber,
	domain.TypeInteger: genai.TypeInteger,
	domain.TypeBoolean: genai.TypeBoolean,
	domain.TypeArray:   genai.TypeArray,
	domain.TypeObject:  genai.TypeObject,
}

func toGenaiSchema(s *domain.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Format:      s.Format,
		Nullable:    s.Nullable,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       toGenaiSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}
