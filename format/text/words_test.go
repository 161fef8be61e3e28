package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []string
	}{
		{description: "lower camel", input: "firstName", expect: []string{"first", "Name"}},
		{description: "upper camel", input: "DepartmentId", expect: []string{"Department", "Id"}},
		{description: "lower underscore", input: "job_title", expect: []string{"job", "title"}},
		{description: "upper underscore", input: "EMP_NO", expect: []string{"EMP", "NO"}},
		{description: "acronym", input: "HTTPServer", expect: []string{"HTTP", "Server"}},
		{description: "trailing acronym", input: "profilePictureURL", expect: []string{"profile", "Picture", "URL"}},
		{description: "digits stay with word", input: "addressLine2", expect: []string{"address", "Line2"}},
		{description: "digit before upper", input: "line2Name", expect: []string{"line2", "Name"}},
		{description: "mixed delimiters", input: "--address  line_one", expect: []string{"address", "line", "one"}},
		{description: "single word", input: "town", expect: []string{"town"}},
		{description: "empty", input: "", expect: nil},
		{description: "delimiters only", input: "__", expect: nil},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, SplitWords(testCase.input), testCase.description)
	}
}
