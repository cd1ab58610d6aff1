package fieldcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rivo/uniseg"
)

// MinLengthRule checks that a string has at least min user-perceived
// characters. Length is counted in grapheme clusters, so "é" written as
// e + combining accent, or a flag emoji, counts once.
type MinLengthRule struct {
	ruleMessage
	min int
}

// MinLength returns a rule that checks a string has at least n grapheme clusters.
func MinLength(n int, message string) *MinLengthRule {
	return &MinLengthRule{
		ruleMessage: ruleMessage{code: CodeMinLength, text: message},
		min:         n,
	}
}

func (r *MinLengthRule) Test(value *string) bool {
	if value == nil {
		return false
	}
	return uniseg.GraphemeClusterCount(*value) >= r.min
}

func (r *MinLengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.min > 0 && ref.Value.MinLength < uint64(r.min) {
		ref.Value.MinLength = uint64(r.min)
	}
	return nil
}
