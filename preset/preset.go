package preset

import (
	"fmt"

	fc "github.com/Gobd/fieldcheck"
)

// Failure messages reported by the presets.
const (
	MessageEmpty    = "Empty subject"
	MessagePhone    = "Wrong phone number"
	MessageDigits   = "Please digits only"
	MessagePositive = "Please positive digits only"
)

// MinLengthMessage returns the message reported when a value is shorter than n.
func MinLengthMessage(n int) string {
	return fmt.Sprintf("Minimum %d characters.", n)
}

// NonEmptyChain returns the base chain shared by every preset.
func NonEmptyChain() *fc.Chain {
	return fc.NewChain(fc.NonEmpty(MessageEmpty))
}

// PasswordChain: non-empty, then at least minLength characters.
func PasswordChain(minLength int) *fc.Chain {
	return NonEmptyChain().
		Add(fc.MinLength(minLength, MinLengthMessage(minLength)))
}

// MobileChain: non-empty, then phone number characters only.
func MobileChain() *fc.Chain {
	return NonEmptyChain().
		Add(fc.Chars(fc.PhoneChars, MessagePhone))
}

// CodeChain: non-empty, at least minLength characters, then digits only.
func CodeChain(minLength int) *fc.Chain {
	return NonEmptyChain().
		Add(fc.MinLength(minLength, MinLengthMessage(minLength))).
		Add(fc.Digits(MessageDigits))
}

// AmountChain: non-empty, then a number greater than zero.
func AmountChain() *fc.Chain {
	return NonEmptyChain().
		Add(fc.Positive(MessagePositive))
}

// NonEmpty returns a validator that only rejects missing or empty values.
func NonEmpty(field fc.Field, opts ...fc.Option) *fc.Validator {
	return fc.Bind(field, NonEmptyChain(), opts...)
}

// Password returns a validator for password fields of at least minLength characters.
func Password(field fc.Field, minLength int, opts ...fc.Option) *fc.Validator {
	return fc.Bind(field, PasswordChain(minLength), opts...)
}

// Mobile returns a validator for phone number fields.
func Mobile(field fc.Field, opts ...fc.Option) *fc.Validator {
	return fc.Bind(field, MobileChain(), opts...)
}

// Code returns a validator for numeric codes of at least minLength digits.
func Code(field fc.Field, minLength int, opts ...fc.Option) *fc.Validator {
	return fc.Bind(field, CodeChain(minLength), opts...)
}

// Amount returns a validator for positive decimal amounts.
func Amount(field fc.Field, opts ...fc.Option) *fc.Validator {
	return fc.Bind(field, AmountChain(), opts...)
}
