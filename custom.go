package fieldcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// CustomRule wraps a caller-supplied predicate. Unlike the library rules it
// receives nil values and decides for itself whether they pass.
type CustomRule struct {
	ruleMessage
	f func(value *string) bool
}

// Custom returns a rule that uses f for validation and message for failures.
func Custom(f func(value *string) bool, message string) *CustomRule {
	return &CustomRule{
		ruleMessage: ruleMessage{code: CodeCustom, text: message},
		f:           f,
	}
}

func (r *CustomRule) Test(value *string) bool {
	return r.f(value)
}

func (r *CustomRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.text)
	return nil
}
