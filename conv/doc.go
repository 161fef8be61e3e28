// Package conv provides a reflection-based converter from untyped payload trees into typed models.
// It supports primitives, slices, maps, structs, pointers and time parsing; struct fields are
// matched by json tag name or by words regardless of the key naming convention.
package conv
