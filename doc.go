// Package fieldcheck validates single form inputs against an ordered chain
// of rules and reports the first failing rule's message back to the field.
//
// A [Rule] is a predicate over an optional string plus a failure message.
// The library rules are [NonEmpty], [MinLength], [Digits], [Chars] and
// [Positive]; [Custom] and [NewStringRule] wrap your own predicates.
//
// A [Validator] binds a [Chain] of rules to a [Field]:
//
//	v := fieldcheck.New(field)
//	v.AddRule(fieldcheck.NonEmpty("Empty subject"))
//	v.AddRule(fieldcheck.MinLength(6, "Minimum 6 characters."))
//
//	if value, ok := v.Evaluate(); ok {
//	    // field was marked valid, value is the accepted input
//	}
//
// Evaluation short-circuits: only the first failing rule's message reaches
// the field, and later rules may assume earlier ones passed.
//
// A [Chain] also implements ozzo-validation's Rule, so the same rules can be
// used with validation.ValidateStruct, and can describe itself on an
// OpenAPI schema.
//
// Sub-packages:
//   - preset – validators for password, mobile number, numeric code and amount fields
//   - openapi – OpenAPI object schemas for whole forms
package fieldcheck
