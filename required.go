package fieldcheck

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NonEmptyRule fails on a missing value or a zero-length string.
// Whitespace counts as content.
type NonEmptyRule struct {
	ruleMessage
	required validation.RequiredRule
}

// NonEmpty returns a rule that rejects missing and empty values.
func NonEmpty(message string) *NonEmptyRule {
	return &NonEmptyRule{
		ruleMessage: ruleMessage{code: CodeNonEmpty, text: message},
		required:    validation.Required,
	}
}

func (r *NonEmptyRule) Test(value *string) bool {
	return value != nil && r.required.Validate(*value) == nil
}

func (r *NonEmptyRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if !slices.Contains(schema.Required, name) {
		schema.Required = append(schema.Required, name)
	}
	if ref.Value.MinLength < 1 {
		ref.Value.MinLength = 1
	}
	return nil
}
