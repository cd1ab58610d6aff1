// Package preset builds [fieldcheck.Validator] values for common form fields.
//
// Every preset starts from the same non-empty base and appends its own
// rules, so an empty field always reports "Empty subject" first:
//
//	password := preset.Password(passwordField, 6)
//	code := preset.Code(codeField, 4)
//
// The ...Chain variants return the same rules without a field, for use with
// ozzo-validation or OpenAPI schema generation.
package preset
