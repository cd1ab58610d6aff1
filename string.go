package fieldcheck

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PhoneChars is the character set accepted in phone numbers.
const PhoneChars = "0123456789+ .()-*#"

// StringRule applies a string predicate to present values. A missing value
// fails; an empty string passes, so pair it with [NonEmpty] when the field
// is mandatory.
type StringRule struct {
	ruleMessage
	rule    validation.StringRule
	pattern string
}

// NewStringRule returns a rule that checks a string with validator and
// reports message on failure.
func NewStringRule(validator func(string) bool, message string) *StringRule {
	return &StringRule{
		ruleMessage: ruleMessage{code: CodeString, text: message},
		rule:        validation.NewStringRule(validator, message),
	}
}

// Digits returns a rule that accepts only the ASCII digits 0-9.
func Digits(message string) *StringRule {
	return &StringRule{
		ruleMessage: ruleMessage{code: CodeDigits, text: message},
		rule:        validation.NewStringRule(govalidator.IsNumeric, message),
		pattern:     "^[0-9]*$",
	}
}

// Chars returns a rule that accepts only characters contained in set.
func Chars(set, message string) *StringRule {
	return &StringRule{
		ruleMessage: ruleMessage{code: CodeChars, text: message},
		rule: validation.NewStringRule(func(s string) bool {
			return onlyChars(s, set)
		}, message),
		pattern: "^[" + classEscape(set) + "]*$",
	}
}

func (r *StringRule) Test(value *string) bool {
	return value != nil && r.rule.Validate(*value) == nil
}

func (r *StringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.pattern == "" {
		appendDescription(ref, r.text)
		return nil
	}
	addPattern(ref, r.pattern)
	return nil
}

func onlyChars(s, set string) bool {
	return strings.IndexFunc(s, func(c rune) bool {
		return !strings.ContainsRune(set, c)
	}) < 0
}

// classEscape escapes the characters that are special inside a regular
// expression character class.
func classEscape(set string) string {
	var b strings.Builder
	for _, c := range set {
		if strings.ContainsRune(`\]^-[`, c) {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
