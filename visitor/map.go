package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapVisitorOf creates a map visitor, iteration order follows the runtime map order
func MapVisitorOf[K comparable, E any](aMap map[K]E) Visitor[K, E] {
	return func(f func(key K, element E) (bool, error)) error {
		for k, e := range aMap {
			next, err := f(k, e)
			if err != nil || !next {
				return err
			}
		}
		return nil
	}
}

// IsStringKeyMap returns true if value is a map with string keys
func IsStringKeyMap(value interface{}) bool {
	switch value.(type) {
	case map[string]interface{}, map[string]string:
		return true
	case nil:
		return false
	}
	rType := reflect.TypeOf(value)
	return rType.Kind() == reflect.Map && rType.Key().Kind() == reflect.String
}

// AnyMapVisitorOf creates a visitor for any map with string keys, keys are visited in sorted order.
func AnyMapVisitorOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return SortedMapVisitorOf[interface{}](actual), nil
	case map[string]string:
		return SortedMapVisitorOf[string](actual), nil
	case map[string]int:
		return SortedMapVisitorOf[int](actual), nil
	case map[string]bool:
		return SortedMapVisitorOf[bool](actual), nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	if rValue.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected string map key, got %s", rValue.Type().Key())
	}
	return func(f func(key string, element any) (bool, error)) error {
		keys := rValue.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, key := range keys {
			next, err := f(key.String(), rValue.MapIndex(key).Interface())
			if err != nil || !next {
				return err
			}
		}
		return nil
	}, nil
}

// SortedMapVisitorOf returns visitor iterating map in sorted key order
func SortedMapVisitorOf[E any](aMap map[string]E) Visitor[string, any] {
	return func(f func(key string, element any) (bool, error)) error {
		keys := make([]string, 0, len(aMap))
		for k := range aMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			next, err := f(key, aMap[key])
			if err != nil || !next {
				return err
			}
		}
		return nil
	}
}
