package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMapVisitor(t *testing.T) {
	var aMap = map[string]bool{
		"abc": true,
		"def": true}

	{
		cloned := make(map[string]bool)
		visit := MapVisitorOf[string, bool](aMap)
		err := visit(func(key string, element bool) (bool, error) {
			cloned[key] = element
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
	}
	{
		visit, err := AnyMapVisitorOf(aMap)
		assert.Nil(t, err)
		cloned := make(map[string]bool)
		err = visit(func(key string, element any) (bool, error) {
			cloned[key] = element.(bool)
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, aMap, cloned)
	}
}

func TestAnyMapVisitorOf_SortedKeys(t *testing.T) {
	type label string
	var testCases = []struct {
		description string
		input       interface{}
		expect      []string
	}{
		{
			description: "interface map",
			input:       map[string]interface{}{"town": "Leeds", "county": "Yorkshire", "postcode": "LS1"},
			expect:      []string{"county", "postcode", "town"},
		},
		{
			description: "reflection map",
			input:       map[label]float64{"b": 2, "a": 1},
			expect:      []string{"a", "b"},
		},
	}
	for _, testCase := range testCases {
		visit, err := AnyMapVisitorOf(testCase.input)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var keys []string
		err = visit(func(key string, _ any) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, keys, testCase.description)
	}
}

func TestAnyMapVisitorOf_Errors(t *testing.T) {
	_, err := AnyMapVisitorOf(map[int]string{1: "a"})
	assert.NotNil(t, err)
	_, err = AnyMapVisitorOf("abc")
	assert.NotNil(t, err)
	assert.True(t, IsStringKeyMap(map[string]int{}))
	assert.False(t, IsStringKeyMap(map[int]int{}))
	assert.False(t, IsStringKeyMap(nil))
}

func TestAnyMapVisitorOf_Stop(t *testing.T) {
	visit, err := AnyMapVisitorOf(map[string]interface{}{"a": 1, "b": 2, "c": 3})
	assert.Nil(t, err)
	count := 0
	err = visit(func(key string, _ any) (bool, error) {
		count++
		return key != "b", nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)
}
