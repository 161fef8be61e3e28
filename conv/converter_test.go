package conv

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/personnel/payload"
)

type department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type employee struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName"`
	DepartmentID int       `json:"departmentId"`
	Salary       float64   `json:"salary"`
	Active       bool      `json:"active"`
	HiredAt      time.Time `json:"hiredAt" format:"dateFormat=YYYY-MM-DD"`
	Skills       []string  `json:"skills"`
	Department   *department
	Ignored      string `json:"-"`
	internal     string
}

func TestConverter_Primitives(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	var testCases = []struct {
		description string
		src         interface{}
		dest        func() interface{}
		expect      interface{}
		hasError    bool
	}{
		{description: "float to int", src: 12.0, dest: func() interface{} { return new(int) }, expect: 12},
		{description: "fractional float to int", src: 12.5, dest: func() interface{} { return new(int) }, hasError: true},
		{description: "string to int", src: " 42", dest: func() interface{} { return new(int) }, expect: 42},
		{description: "int overflow", src: 300, dest: func() interface{} { return new(int8) }, hasError: true},
		{description: "negative to uint", src: -1, dest: func() interface{} { return new(uint) }, hasError: true},
		{description: "float to string", src: 123.456, dest: func() interface{} { return new(string) }, expect: "123.456"},
		{description: "bool to string", src: true, dest: func() interface{} { return new(string) }, expect: "true"},
		{description: "string to bool", src: "true", dest: func() interface{} { return new(bool) }, expect: true},
		{description: "string to float", src: "1.5", dest: func() interface{} { return new(float64) }, expect: 1.5},
		{description: "invalid float", src: "abc", dest: func() interface{} { return new(float64) }, hasError: true},
		{description: "large number to int64", src: json.Number("9007199254740993"), dest: func() interface{} { return new(int64) }, expect: int64(9007199254740993)},
		{description: "number to float", src: json.Number("0.25"), dest: func() interface{} { return new(float64) }, expect: 0.25},
		{description: "number to string", src: json.Number("7"), dest: func() interface{} { return new(string) }, expect: "7"},
		{description: "unix number to time", src: json.Number("86400"), dest: func() interface{} { return new(time.Time) }, expect: time.Unix(86400, 0).UTC()},
	}

	for _, testCase := range testCases {
		dest := testCase.dest()
		err := converter.Convert(testCase.src, dest)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		switch actual := dest.(type) {
		case *int:
			assert.EqualValues(t, testCase.expect, *actual, testCase.description)
		case *string:
			assert.EqualValues(t, testCase.expect, *actual, testCase.description)
		case *bool:
			assert.EqualValues(t, testCase.expect, *actual, testCase.description)
		case *float64:
			assert.EqualValues(t, testCase.expect, *actual, testCase.description)
		case *int64:
			assert.Equal(t, testCase.expect, *actual, testCase.description)
		case *time.Time:
			assert.True(t, testCase.expect.(time.Time).Equal(*actual), testCase.description)
		}
	}
}

func TestConverter_Struct(t *testing.T) {
	converter := NewConverter(DefaultOptions())

	t.Run("object with local keys", func(t *testing.T) {
		src := payload.ObjectOf(
			"id", 7.0,
			"firstName", "Ada",
			"departmentId", 3.0,
			"salary", 1200.5,
			"active", true,
			"hiredAt", "2024-01-15",
			"skills", []interface{}{"go", "sql"},
			"department", map[string]interface{}{"id": 3.0, "name": "R&D"},
			"unknown", "x",
		)
		var actual employee
		require.NoError(t, converter.Convert(src, &actual))
		assert.Equal(t, 7, actual.ID)
		assert.Equal(t, "Ada", actual.FirstName)
		assert.Equal(t, 3, actual.DepartmentID)
		assert.Equal(t, 1200.5, actual.Salary)
		assert.True(t, actual.Active)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), actual.HiredAt)
		assert.Equal(t, []string{"go", "sql"}, actual.Skills)
		require.NotNil(t, actual.Department)
		assert.Equal(t, department{ID: 3, Name: "R&D"}, *actual.Department)
	})

	t.Run("wire keys match by words", func(t *testing.T) {
		src := map[string]interface{}{"first_name": "Grace", "department_id": "5", "Ignored": "no"}
		var actual employee
		require.NoError(t, converter.Convert(src, &actual))
		assert.Equal(t, "Grace", actual.FirstName)
		assert.Equal(t, 5, actual.DepartmentID)
		assert.Empty(t, actual.Ignored)
	})

	t.Run("slice of structs", func(t *testing.T) {
		src := []interface{}{
			map[string]interface{}{"id": 1.0, "name": "HR"},
			payload.ObjectOf("id", 2.0, "name", "IT"),
		}
		var actual []department
		require.NoError(t, converter.Convert(src, &actual))
		assert.Equal(t, []department{{ID: 1, Name: "HR"}, {ID: 2, Name: "IT"}}, actual)
	})

	t.Run("null clears field", func(t *testing.T) {
		actual := employee{FirstName: "x", Department: &department{ID: 1}}
		require.NoError(t, converter.Convert(map[string]interface{}{"firstName": nil, "department": nil}, &actual))
		assert.Empty(t, actual.FirstName)
		assert.Nil(t, actual.Department)
	})

	t.Run("type mismatch", func(t *testing.T) {
		var actual employee
		err := converter.Convert(map[string]interface{}{"salary": []interface{}{1}}, &actual)
		assert.Error(t, err)
	})

	t.Run("unmapped key error", func(t *testing.T) {
		strict := NewConverter(Options{ErrorOnUnmapped: true})
		var actual department
		assert.Error(t, strict.Convert(map[string]interface{}{"code": "x"}, &actual))
	})
}

func TestConverter_Map(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	var actual map[string]int
	require.NoError(t, converter.Convert(payload.ObjectOf("a", 1.0, "b", "2"), &actual))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, actual)

	var any map[string]interface{}
	require.NoError(t, converter.Convert(map[string]interface{}{"x": []interface{}{1.0}}, &any))
	assert.Equal(t, map[string]interface{}{"x": []interface{}{1.0}}, any)
}

func TestConverter_InvalidDestination(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	assert.Error(t, converter.Convert(1, nil))
	var i int
	assert.Error(t, converter.Convert(1, i))
	var p *int
	assert.Error(t, converter.Convert(1, p))
}
