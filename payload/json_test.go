package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expect      string
		hasError    bool
	}{
		{
			description: "ordered object",
			input:       ObjectOf("last_name", "Lovelace", "first_name", "Ada", "department_id", 3),
			expect:      `{"last_name":"Lovelace","first_name":"Ada","department_id":3}`,
		},
		{
			description: "nested values",
			input: ObjectOf("id", 1, "tags", []interface{}{"a", 2.5, nil},
				"address", map[string]interface{}{"town": "Leeds", "county": "Yorkshire"}),
			expect: `{"id":1,"tags":["a",2.5,null],"address":{"county":"Yorkshire","town":"Leeds"}}`,
		},
		{
			description: "top level array",
			input:       []interface{}{ObjectOf("id", 1), ObjectOf("id", 2)},
			expect:      `[{"id":1},{"id":2}]`,
		},
		{
			description: "scalar",
			input:       "abc",
			expect:      `"abc"`,
		},
		{
			description: "attachment",
			input:       ObjectOf("profile_picture", NewAttachment("me.png", []byte{1})),
			hasError:    true,
		},
	}
	for _, testCase := range testCases {
		actual, err := Marshal(testCase.input)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.JSONEq(t, testCase.expect, string(actual), testCase.description)
		if _, ok := testCase.input.(*Object); ok {
			assert.Equal(t, testCase.expect, string(actual), testCase.description)
		}
	}
}

func TestUnmarshal(t *testing.T) {
	value, err := Unmarshal([]byte(` {"job_title":"Engineer","department_id":3,"address":{"town":"Leeds"},"tags":["a"],"picture":null}`))
	require.Nil(t, err)
	obj, ok := value.(*Object)
	require.True(t, ok)
	assert.EqualValues(t, []string{"job_title", "department_id", "address", "tags", "picture"}, obj.Keys())
	title, _ := obj.Get("job_title")
	assert.EqualValues(t, "Engineer", title)
	departmentID, _ := obj.Get("department_id")
	assert.Equal(t, json.Number("3"), departmentID)
	address, _ := obj.Get("address")
	assert.Equal(t, map[string]interface{}{"town": "Leeds"}, address)

	value, err = Unmarshal([]byte(`[{"id":1},{"id":2}]`))
	require.Nil(t, err)
	list, ok := value.([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 2)

	value, err = Unmarshal([]byte(`[]`))
	require.Nil(t, err)
	assert.EqualValues(t, []interface{}{}, value)

	value, err = Unmarshal(nil)
	assert.Nil(t, err)
	assert.Nil(t, value)

	value, err = Unmarshal([]byte(`"ok"`))
	assert.Nil(t, err)
	assert.EqualValues(t, "ok", value)

	_, err = Unmarshal([]byte(`{"id":`))
	assert.NotNil(t, err)
}

func TestUnmarshal_LargeNumbers(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      interface{}
	}{
		{
			description: "object id above float precision",
			input:       `{"id":9007199254740993,"ratio":0.25}`,
			expect:      ObjectOf("id", json.Number("9007199254740993"), "ratio", json.Number("0.25")),
		},
		{
			description: "nested id",
			input:       `{"department":{"id":9007199254740995}}`,
			expect:      ObjectOf("department", map[string]interface{}{"id": json.Number("9007199254740995")}),
		},
		{
			description: "array ids",
			input:       `[9007199254740993,{"id":1}]`,
			expect:      []interface{}{json.Number("9007199254740993"), map[string]interface{}{"id": json.Number("1")}},
		},
		{
			description: "top level number",
			input:       `9007199254740993`,
			expect:      json.Number("9007199254740993"),
		},
	}
	for _, testCase := range testCases {
		actual, err := Unmarshal([]byte(testCase.input))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		data, err := Marshal(actual)
		require.NoError(t, err, testCase.description)
		assert.JSONEq(t, testCase.input, string(data), testCase.description)
	}
}
