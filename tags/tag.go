package tags

import (
	"reflect"
	"strings"
)

type (
	//Tag represents a named struct tag with its values
	Tag struct {
		Name   string
		Values Values
	}

	//Pair represents a single tag key with optional value
	Pair struct {
		Key   string
		Value string
	}
)

// Pairs returns tag key value pairs in declaration order
func (t *Tag) Pairs() ([]Pair, error) {
	if t == nil {
		return nil, nil
	}
	var result []Pair
	err := t.Values.MatchPairs(func(key, value string) error {
		result = append(result, Pair{Key: key, Value: value})
		return nil
	})
	return result, err
}

// Has returns true if tag defines the supplied key
func (t *Tag) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.Values.Lookup(key)
	return ok
}

// Parse returns the named tag of a struct field or nil if the tag is absent
func Parse(tag reflect.StructTag, name string) *Tag {
	value, ok := tag.Lookup(name)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	return &Tag{Name: name, Values: Values(value)}
}
