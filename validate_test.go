package fieldcheck_test

import (
	"bytes"
	"errors"
	"testing"

	fc "github.com/Gobd/fieldcheck"
	"github.com/Gobd/fieldcheck/preset"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingField records how the validator used it.
type countingField struct {
	value   *string
	reads   int
	valid   int
	invalid []string
}

func (f *countingField) Value() *string {
	f.reads++
	return f.value
}

func (f *countingField) MarkValid() {
	f.valid++
}

func (f *countingField) MarkInvalid(message string) {
	f.invalid = append(f.invalid, message)
}

func strptr(s string) *string {
	return &s
}

func TestValidator_NoRules(t *testing.T) {
	field := fc.NewTextField("anything at all")
	value, ok := fc.New(field).Evaluate()

	require.True(t, ok)
	assert.Equal(t, "anything at all", value)
	assert.True(t, field.Marked())
	assert.True(t, field.Valid())
}

func TestValidator_NoRulesMissingValue(t *testing.T) {
	field := fc.NewMissingField()
	value, ok := fc.New(field).Evaluate()

	require.True(t, ok)
	assert.Empty(t, value)
	assert.True(t, field.Valid())
}

func TestValidator_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name  string
		rules []fc.Rule
		want  string
	}{
		{
			name:  "digits before length",
			rules: []fc.Rule{fc.Digits("digits"), fc.MinLength(5, "length")},
			want:  "digits",
		},
		{
			name:  "length before digits",
			rules: []fc.Rule{fc.MinLength(5, "length"), fc.Digits("digits")},
			want:  "length",
		},
		{
			name:  "passing rule skipped over",
			rules: []fc.Rule{fc.NonEmpty("empty"), fc.MinLength(5, "length"), fc.Digits("digits")},
			want:  "length",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := &countingField{value: strptr("ab")}
			v := fc.New(field)
			for _, r := range tt.rules {
				v.AddRule(r)
			}

			value, ok := v.Evaluate()
			assert.False(t, ok)
			assert.Empty(t, value)
			assert.Equal(t, []string{tt.want}, field.invalid)
			assert.Zero(t, field.valid)
		})
	}
}

func TestValidator_ShortCircuit(t *testing.T) {
	calls := 0
	later := fc.Custom(func(*string) bool {
		calls++
		return true
	}, "later")

	field := &countingField{value: strptr("")}
	v := fc.New(field)
	v.AddRule(fc.NonEmpty("Empty subject"))
	v.AddRule(later)

	_, ok := v.Evaluate()
	assert.False(t, ok)
	assert.Zero(t, calls, "rules after the first failure must not run")
	assert.Equal(t, []string{"Empty subject"}, field.invalid)
}

func TestValidator_ReadsValueOnce(t *testing.T) {
	field := &countingField{value: strptr("123456")}
	v := preset.Code(field, 4)

	value, ok := v.Evaluate()
	require.True(t, ok)
	assert.Equal(t, "123456", value)
	assert.Equal(t, 1, field.reads)
	assert.Equal(t, 1, field.valid)
	assert.Empty(t, field.invalid)
}

func TestValidator_DoesNotMutateValue(t *testing.T) {
	field := fc.NewTextField("  12ab  ")
	v := preset.Code(field, 4)

	_, ok := v.Evaluate()
	require.False(t, ok)
	assert.Equal(t, "  12ab  ", *field.Value())
	assert.Equal(t, preset.MessageDigits, field.Message())

	field.SetValue("1234")
	value, ok := v.Evaluate()
	require.True(t, ok)
	assert.Equal(t, "1234", value)
	assert.Equal(t, "1234", *field.Value())
	assert.Empty(t, field.Message())
}

func TestValidator_EmptyMessage(t *testing.T) {
	field := &countingField{value: nil}
	v := fc.New(field)
	v.AddRule(fc.NonEmpty(""))

	_, ok := v.Evaluate()
	assert.False(t, ok)
	assert.Equal(t, []string{""}, field.invalid)
}

func TestValidator_AddRuleAppends(t *testing.T) {
	v := fc.New(fc.NewTextField("x"))
	first := fc.NonEmpty("a")
	second := fc.MinLength(2, "b")
	v.AddRule(first)
	v.AddRule(second)
	v.AddRule(nil)

	rules := v.Chain().Rules()
	require.Len(t, rules, 2)
	assert.Same(t, first, rules[0])
	assert.Same(t, second, rules[1])

	rules[0] = nil
	assert.NotNil(t, v.Chain().Rules()[0], "Rules returns a copy")
}

func TestValidator_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	field := fc.NewTextField("secret")
	v := preset.Password(field, 8, fc.WithLogger(log), fc.WithName("password"))

	_, ok := v.Evaluate()
	require.False(t, ok)
	assert.Contains(t, buf.String(), `"field":"password"`)
	assert.Contains(t, buf.String(), fc.CodeMinLength)
	assert.NotContains(t, buf.String(), "secret", "values are never logged")
}

func TestChain_Validate(t *testing.T) {
	chain := preset.PasswordChain(6)

	tests := []struct {
		name     string
		value    any
		wantCode string
		wantMsg  string
	}{
		{name: "valid string", value: "abcdef"},
		{name: "valid pointer", value: strptr("abcdef")},
		{name: "short", value: "abc", wantCode: fc.CodeMinLength, wantMsg: "Minimum 6 characters."},
		{name: "empty", value: "", wantCode: fc.CodeNonEmpty, wantMsg: "Empty subject"},
		{name: "nil", value: nil, wantCode: fc.CodeNonEmpty, wantMsg: "Empty subject"},
		{name: "nil pointer", value: (*string)(nil), wantCode: fc.CodeNonEmpty, wantMsg: "Empty subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := chain.Validate(tt.value)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			var verr validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantCode, verr.Code())
			assert.Equal(t, tt.wantMsg, verr.Message())
		})
	}
}

func TestChain_ValidateUnsupportedType(t *testing.T) {
	err := preset.AmountChain().Validate(3.5)
	require.ErrorIs(t, err, fc.ErrUnsupportedType)
	assert.Equal(t, "expected string or *string, got float64", err.Error())
}

type signupForm struct {
	Password string  `json:"password"`
	Mobile   string  `json:"mobile"`
	Amount   *string `json:"amount"`
}

func TestChain_ValidateStruct(t *testing.T) {
	form := signupForm{Password: "abc", Mobile: "+1 (555) 123-4567"}
	err := validation.ValidateStruct(&form,
		validation.Field(&form.Password, preset.PasswordChain(6)),
		validation.Field(&form.Mobile, preset.MobileChain()),
		validation.Field(&form.Amount, preset.AmountChain()),
	)

	var errs fc.ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 2)

	var pw validation.Error
	require.True(t, errors.As(errs["password"], &pw))
	assert.Equal(t, fc.CodeMinLength, pw.Code())
	assert.Equal(t, "Minimum 6 characters.", pw.Message())

	var amount validation.Error
	require.True(t, errors.As(errs["amount"], &amount))
	assert.Equal(t, fc.CodeNonEmpty, amount.Code())

	form.Password = "abcdef"
	form.Amount = strptr("3.5")
	err = validation.ValidateStruct(&form,
		validation.Field(&form.Password, preset.PasswordChain(6)),
		validation.Field(&form.Mobile, preset.MobileChain()),
		validation.Field(&form.Amount, preset.AmountChain()),
	)
	require.NoError(t, err)
}
