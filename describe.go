package fieldcheck

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

// addPattern sets the schema pattern, or adds an allOf entry when a pattern
// is already present, since a schema carries only one.
func addPattern(ref *openapi3.SchemaRef, pattern string) {
	if ref.Value.Pattern == "" || ref.Value.Pattern == pattern {
		ref.Value.Pattern = pattern
		return
	}
	for _, s := range ref.Value.AllOf {
		if s.Value != nil && s.Value.Pattern == pattern {
			return
		}
	}
	ref.Value.AllOf = append(ref.Value.AllOf, openapi3.NewSchemaRef("", &openapi3.Schema{Pattern: pattern}))
}
