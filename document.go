package fieldcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// Rule is a single predicate over an optional string value together with
	// the message shown when the predicate fails. A nil value means the field
	// has no value at all.
	Rule interface {
		Test(value *string) bool
		Message() string
		Code() string
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Field is the bindable input a Validator reads from and reports to.
	// Value is read exactly once per evaluation. MarkValid clears any error
	// indication; MarkInvalid renders one, with message possibly empty.
	//
	//	type input struct{ widget *Entry }
	//
	//	func (i input) Value() *string           { s := i.widget.Text(); return &s }
	//	func (i input) MarkValid()               { i.widget.SetError("") }
	//	func (i input) MarkInvalid(msg string)   { i.widget.SetError(msg) }
	Field interface {
		Value() *string
		MarkValid()
		MarkInvalid(message string)
	}
)
