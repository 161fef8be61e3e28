// Package validate checks struct fields against rules declared with the `validate` tag.
//
// Supported rules: required, email, numeric, oneof='a|b' and label='Display Name'.
// All violations are collected into a *multierror.Error of *FieldError.
package validate
