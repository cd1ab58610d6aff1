package fieldcheck

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog"
)

// Chain is an ordered, append-only list of rules evaluated with
// short-circuiting: the first failing rule decides the outcome.
//
// A Chain is also a validation.Rule from ozzo-validation, so the rules of a
// preset can be reused inside validation.ValidateStruct.
type Chain struct {
	rules []Rule
}

// NewChain returns a chain holding rules in the given order.
func NewChain(rules ...Rule) *Chain {
	c := &Chain{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		c.Add(r)
	}
	return c
}

// Add appends rule to the end of the chain. Nil rules are ignored.
func (c *Chain) Add(rule Rule) *Chain {
	if rule == nil {
		return c
	}
	c.rules = append(c.rules, rule)
	return c
}

// Rules returns a copy of the rules in evaluation order.
func (c *Chain) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of rules.
func (c *Chain) Len() int {
	return len(c.rules)
}

// Check runs value through the rules in order and returns the first rule
// that fails, or nil when every rule passes.
func (c *Chain) Check(value *string) Rule {
	for _, rule := range c.rules {
		if !rule.Test(value) {
			return rule
		}
	}
	return nil
}

// Validate implements ozzo-validation's Rule. It accepts a string, a
// *string or nil and returns a validation.Error carrying the failing
// rule's code and message.
func (c *Chain) Validate(value any) error {
	var s *string
	switch v := value.(type) {
	case nil:
	case string:
		s = &v
	case *string:
		s = v
	default:
		return fmt.Errorf("%w, got %T", ErrUnsupportedType, value)
	}
	if rule := c.Check(s); rule != nil {
		return ruleError(rule)
	}
	return nil
}

// Describe calls Describe on every rule of the chain.
func (c *Chain) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, rule := range c.rules {
		if err := rule.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

// Validator binds a [Chain] to a [Field]. It reads the field's value, runs
// the chain and reports the outcome back to the field.
//
// A Validator is not safe for concurrent use.
type Validator struct {
	chain *Chain
	field Field
	name  string
	log   zerolog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger makes the Validator log each evaluation at debug level.
// Field values are never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Validator) {
		v.log = l
	}
}

// WithName sets the field name used in log entries.
func WithName(name string) Option {
	return func(v *Validator) {
		v.name = name
	}
}

// New returns a Validator for field with no rules. Add rules with
// [Validator.AddRule]; with none, every value is accepted.
func New(field Field, opts ...Option) *Validator {
	return Bind(field, NewChain(), opts...)
}

// Bind returns a Validator that evaluates chain against field. The Validator
// takes ownership of chain.
func Bind(field Field, chain *Chain, opts ...Option) *Validator {
	if chain == nil {
		chain = NewChain()
	}
	v := &Validator{
		chain: chain,
		field: field,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddRule appends rule to the validator's chain.
func (v *Validator) AddRule(rule Rule) {
	v.chain.Add(rule)
}

// Chain returns the validator's rule chain.
func (v *Validator) Chain() *Chain {
	return v.chain
}

// Evaluate reads the field value once and tests it against the rules in
// order. On the first failure the field is marked invalid with that rule's
// message and ok is false. Otherwise the field is marked valid and the value
// is returned unchanged; a missing value accepted by an empty chain is
// returned as "".
func (v *Validator) Evaluate() (value string, ok bool) {
	in := v.field.Value()
	if rule := v.chain.Check(in); rule != nil {
		v.log.Debug().
			Str("field", v.name).
			Str("code", rule.Code()).
			Msg("field invalid")
		v.field.MarkInvalid(rule.Message())
		return "", false
	}

	v.log.Debug().
		Str("field", v.name).
		Int("rules", v.chain.Len()).
		Msg("field valid")
	v.field.MarkValid()
	if in == nil {
		return "", true
	}
	return *in, true
}
