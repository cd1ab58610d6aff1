package tui

import (
	fc "github.com/Gobd/fieldcheck"
	"github.com/Gobd/fieldcheck/internal/config"
	"github.com/Gobd/fieldcheck/preset"
	"github.com/charmbracelet/bubbles/textinput"
)

type fieldState int

const (
	stateUnchecked fieldState = iota
	stateValid
	stateInvalid
)

// inputField adapts a text input to fieldcheck.Field. The input always has a
// value, possibly empty.
type inputField struct {
	name      string
	label     string
	input     textinput.Model
	state     fieldState
	message   string
	validator *fc.Validator
}

func (f *inputField) Value() *string {
	v := f.input.Value()
	return &v
}

func (f *inputField) MarkValid() {
	f.state = stateValid
	f.message = ""
	f.input.PromptStyle = validStyle
}

func (f *inputField) MarkInvalid(message string) {
	f.state = stateInvalid
	f.message = message
	f.input.PromptStyle = invalidStyle
}

// fieldSpec describes one input of the form.
type fieldSpec struct {
	name        string
	label       string
	placeholder string
	secret      bool
	chain       func() *fc.Chain
	bind        func(fc.Field, ...fc.Option) *fc.Validator
}

func formSpecs(cfg *config.Config) []fieldSpec {
	return []fieldSpec{
		{
			name:   "password",
			label:  "Password",
			secret: true,
			chain:  func() *fc.Chain { return preset.PasswordChain(cfg.PasswordMinLength) },
			bind: func(f fc.Field, opts ...fc.Option) *fc.Validator {
				return preset.Password(f, cfg.PasswordMinLength, opts...)
			},
		},
		{
			name:        "mobile",
			label:       "Mobile",
			placeholder: "+1 (555) 123-4567",
			chain:       preset.MobileChain,
			bind:        preset.Mobile,
		},
		{
			name:        "code",
			label:       "Code",
			placeholder: "1234",
			chain:       func() *fc.Chain { return preset.CodeChain(cfg.CodeMinLength) },
			bind: func(f fc.Field, opts ...fc.Option) *fc.Validator {
				return preset.Code(f, cfg.CodeMinLength, opts...)
			},
		},
		{
			name:        "amount",
			label:       "Amount",
			placeholder: "3.50",
			chain:       preset.AmountChain,
			bind:        preset.Amount,
		},
	}
}
