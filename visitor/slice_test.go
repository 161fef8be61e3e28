package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSliceVisitor(t *testing.T) {
	mySlice := []interface{}{"a", 1, 3.14, true}

	visit, err := SliceVisitorOf[any](mySlice)
	if !assert.Nil(t, err) {
		return
	}
	clone := []interface{}{}
	err = visit(func(index int, element interface{}) (bool, error) {
		clone = append(clone, element)
		return true, nil // continue iteration
	})
	assert.NoError(t, err)
	assert.EqualValues(t, mySlice, clone)
}

func TestAnySliceVisitorOf(t *testing.T) {
	type department struct{ Name string }
	var testCases = []struct {
		description string
		input       interface{}
		expect      []interface{}
		hasError    bool
	}{
		{description: "strings", input: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "structs", input: []department{{Name: "HR"}}, expect: []interface{}{department{Name: "HR"}}},
		{description: "array", input: [2]int{1, 2}, expect: []interface{}{1, 2}},
		{description: "binary", input: []byte("abc"), hasError: true},
		{description: "scalar", input: 1, hasError: true},
	}
	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		var actual []interface{}
		err = visit(func(_ int, element any) (bool, error) {
			actual = append(actual, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
	assert.True(t, IsSequence([]string{}))
	assert.False(t, IsSequence([]byte{}))
	assert.False(t, IsSequence(nil))
}
