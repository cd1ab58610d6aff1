package openapi

import (
	"errors"
	"fmt"

	fc "github.com/Gobd/fieldcheck"
	"github.com/getkin/kin-openapi/openapi3"
)

// ErrUnnamedField is returned by [FormSchema] for a field with an empty name.
var ErrUnnamedField = errors.New("form field has no name")

// FormField names the chain that validates one form input.
type FormField struct {
	Name  string
	Chain *fc.Chain
}

// FormSchema returns an object schema with one string property per field.
// Fields whose chain holds a non-empty rule are listed as required.
func FormSchema(fields ...FormField) (*openapi3.SchemaRef, error) {
	obj := openapi3.NewObjectSchema()
	if obj.Properties == nil {
		obj.Properties = openapi3.Schemas{}
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field index %d: %w", i, ErrUnnamedField)
		}
		prop := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
		if f.Chain != nil {
			if err := f.Chain.Describe(f.Name, obj, prop); err != nil {
				return nil, fmt.Errorf("describe %s: %w", f.Name, err)
			}
		}
		obj.Properties[f.Name] = prop
	}
	return openapi3.NewSchemaRef("", obj), nil
}
