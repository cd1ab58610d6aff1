package fieldcheck

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Codes carried by the [validation.Error] values that [Chain.Validate] returns.
const (
	CodeNonEmpty  = "validation_non_empty"
	CodeMinLength = "validation_min_length"
	CodeDigits    = "validation_digits"
	CodeChars     = "validation_chars"
	CodePositive  = "validation_positive"
	CodeString    = "validation_string"
	CodeCustom    = "validation_custom"
)

// ErrUnsupportedType is returned by [Chain.Validate] for values that are
// neither a string nor a *string.
var ErrUnsupportedType = errors.New("expected string or *string")

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation, which is what
// [validation.ValidateStruct] returns when a [Chain] is used as a field rule.
type ValidationErrors = validation.Errors

func ruleError(r Rule) validation.Error {
	return validation.NewError(r.Code(), r.Message())
}
