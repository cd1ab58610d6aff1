// Package openapi generates OpenAPI 3 object schemas for forms whose fields
// are validated by [fieldcheck.Chain] values.
//
//	ref, err := openapi.FormSchema(
//	    openapi.FormField{Name: "password", Chain: preset.PasswordChain(6)},
//	    openapi.FormField{Name: "amount", Chain: preset.AmountChain()},
//	)
package openapi
