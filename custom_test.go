package fieldcheck_test

import (
	"testing"

	fc "github.com/Gobd/fieldcheck"
	"github.com/stretchr/testify/assert"
)

func TestCustom(t *testing.T) {
	var seen []*string
	r := fc.Custom(func(value *string) bool {
		seen = append(seen, value)
		return value == nil || *value != "forbidden"
	}, "custom error")

	assert.True(t, r.Test(nil), "custom rules decide about missing values themselves")
	assert.Error(t, fc.NewChain(r).Validate("forbidden"))
	assert.Len(t, seen, 2)
	assert.Equal(t, fc.CodeCustom, r.Code())

	field := fc.NewTextField("forbidden")
	v := fc.New(field)
	v.AddRule(r)
	_, ok := v.Evaluate()
	assert.False(t, ok)
	assert.Equal(t, "custom error", field.Message())
}
