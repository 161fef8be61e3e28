package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a Visitor for []E
func SliceVisitorOf[E any](value interface{}) (Visitor[int, E], error) {
	slice, ok := value.([]E)
	if !ok {
		return nil, fmt.Errorf("expected %T, got %T", slice, value)
	}
	return sequence(len(slice), func(i int) E { return slice[i] }), nil
}

// IsSequence returns true for slices and arrays, byte slices are binary data, not sequences
func IsSequence(value interface{}) bool {
	switch value.(type) {
	case []interface{}:
		return true
	case []byte, nil:
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// AnySliceVisitorOf creates a visitor from any slice or array value
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []map[string]interface{}:
		return AnyTypedSliceVisitorOf[map[string]interface{}](actual), nil
	case []byte:
		return nil, fmt.Errorf("expected sequence, got binary %T", value)
	}
	rValue := reflect.ValueOf(value)
	if kind := rValue.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return sequence(rValue.Len(), func(i int) any { return rValue.Index(i).Interface() }), nil
}

// AnyTypedSliceVisitorOf returns an untyped element visitor for []E
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return sequence(len(slice), func(i int) any { return slice[i] })
}

// sequence visits indexes [0, n) in order
func sequence[E any](n int, at func(i int) E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		for i := 0; i < n; i++ {
			next, err := f(i, at(i))
			if err != nil {
				return err
			}
			if !next {
				return nil
			}
		}
		return nil
	}
}
