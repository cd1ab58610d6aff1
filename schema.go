package fieldcheck

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaRef returns an OpenAPI string schema for a field named name,
// described by every rule of the chain. Rules that make the field mandatory
// are reflected in the MinLength of the returned schema; use
// [Chain.Describe] directly to also collect the parent's required list.
func (c *Chain) SchemaRef(name string) (*openapi3.SchemaRef, error) {
	parent := openapi3.NewObjectSchema()
	ref := openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	if err := c.Describe(name, parent, ref); err != nil {
		return nil, err
	}
	return ref, nil
}
