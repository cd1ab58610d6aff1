package fieldcheck

import (
	"math"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

const decimalPattern = `^[-+]?([0-9]+)?(\.[0-9]*)?([eE][-+]?[0-9]+)?$`

// PositiveRule checks that a string is a finite decimal number greater than
// zero. Anything that does not parse fails the rule.
type PositiveRule struct {
	ruleMessage
}

// Positive returns a rule that accepts decimal strings such as "3.5" or
// "1e3" whose value is greater than zero.
func Positive(message string) *PositiveRule {
	return &PositiveRule{ruleMessage{code: CodePositive, text: message}}
}

func (r *PositiveRule) Test(value *string) bool {
	if value == nil || !govalidator.IsFloat(*value) {
		return false
	}
	f, err := govalidator.ToFloat(*value)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f > 0
}

func (r *PositiveRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "decimal"
	addPattern(ref, decimalPattern)
	appendDescription(ref, "greater than 0")
	return nil
}
