package text

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseFormat_Format(t *testing.T) {
	var useCases = []struct {
		description string
		to          CaseFormat
		input       string
		expect      string
	}{
		{description: "camel to snake", to: CaseFormatLowerUnderscore, input: "firstName", expect: "first_name"},
		{description: "snake to camel", to: CaseFormatLowerCamel, input: "job_title", expect: "jobTitle"},
		{description: "snake to camel id", to: CaseFormatLowerCamel, input: "department_id", expect: "departmentId"},
		{description: "already snake", to: CaseFormatLowerUnderscore, input: "last_name", expect: "last_name"},
		{description: "already camel", to: CaseFormatLowerCamel, input: "empNo", expect: "empNo"},
		{description: "single word", to: CaseFormatLowerCamel, input: "town", expect: "town"},
		{description: "upper camel to snake", to: CaseFormatLowerUnderscore, input: "AddressLineOne", expect: "address_line_one"},
		{description: "upper underscore to camel", to: CaseFormatLowerCamel, input: "ADDRESS_LINE_TWO", expect: "addressLineTwo"},
		{description: "camel to upper underscore", to: CaseFormatUpperUnderscore, input: "abcXyzId", expect: "ABC_XYZ_ID"},
		{description: "snake to upper camel", to: CaseFormatUpperCamel, input: "profile_picture_url", expect: "ProfilePictureUrl"},
		{description: "digits", to: CaseFormatLowerUnderscore, input: "addressLine2", expect: "address_line2"},
		{description: "alias", to: NewCaseFormat("snake"), input: "createdAt", expect: "created_at"},
		{description: "undefined is nop", to: CaseFormatUndefined, input: "createdAt", expect: "createdAt"},
		{description: "empty key", to: CaseFormatLowerCamel, input: "", expect: ""},
		{description: "malformed key", to: CaseFormatLowerCamel, input: "__", expect: ""},
	}

	for _, useCase := range useCases {
		assert.EqualValues(t, useCase.expect, useCase.to.Format(useCase.input), useCase.description)
		//memoised value
		assert.EqualValues(t, useCase.expect, useCase.to.Format(useCase.input), useCase.description)
	}
}

func TestCaseFormat_RoundTrip(t *testing.T) {
	var localKeys = []string{"firstName", "lastName", "empNo", "jobTitle", "departmentId", "addressLineOne", "postcode", "line2Name"}
	for _, key := range localKeys {
		wire := Wire.Format(key)
		assert.EqualValues(t, key, Local.Format(wire), fmt.Sprintf("local %v via %v", key, wire))
	}
	var wireKeys = []string{"first_name", "profile_picture_url", "department_name", "id", "address_line2"}
	for _, key := range wireKeys {
		local := Local.Format(key)
		assert.EqualValues(t, key, Wire.Format(local), fmt.Sprintf("wire %v via %v", key, local))
	}
}

func TestNewCaseFormat(t *testing.T) {
	assert.EqualValues(t, CaseFormatLowerCamel, NewCaseFormat("lc"))
	assert.EqualValues(t, CaseFormatLowerUnderscore, NewCaseFormat("lowerUnderscore"))
	assert.EqualValues(t, CaseFormatUpperUnderscore, NewCaseFormat("uu"))
	assert.EqualValues(t, CaseFormatUndefined, NewCaseFormat("sentence"))
	assert.False(t, CaseFormat("title").IsDefined())
	assert.True(t, CaseFormat("snake").IsDefined())
}

func TestToTitle(t *testing.T) {
	assert.EqualValues(t, "Name", ToTitle("nAME"))
	assert.EqualValues(t, "", ToTitle(""))
}
