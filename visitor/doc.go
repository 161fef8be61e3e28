// Package visitor offers generic visitors for payload containers.
// It provides iteration over string keyed maps, slices and structs,
// with simple callback-based traversal and deterministic map key order.
package visitor
