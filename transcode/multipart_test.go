package transcode

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/personnel/format/text"
	"github.com/viant/personnel/payload"
)

type part struct {
	name     string
	fileName string
	value    string
}

func readParts(t *testing.T, body *Body) []part {
	mediaType, params, err := mime.ParseMediaType(body.ContentType)
	require.Nil(t, err)
	require.Equal(t, "multipart/form-data", mediaType)
	reader := multipart.NewReader(body.Reader(), params["boundary"])
	var parts []part
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.Nil(t, err)
		data, err := io.ReadAll(p)
		require.Nil(t, err)
		parts = append(parts, part{name: p.FormName(), fileName: p.FileName(), value: string(data)})
	}
	return parts
}

func TestEncode_JSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expect      string
	}{
		{
			description: "flat object",
			input:       payload.ObjectOf("department_name", "HR", "town", "Leeds"),
			expect:      `{"department_name":"HR","town":"Leeds"}`,
		},
		{
			description: "map",
			input:       map[string]interface{}{"username": "ada", "password": "secret"},
			expect:      `{"password":"secret","username":"ada"}`,
		},
		{
			description: "nested attachment is not a flat attachment",
			input:       map[string]interface{}{"nested": map[string]interface{}{"id": 1}},
			expect:      `{"nested":{"id":1}}`,
		},
	}
	for _, testCase := range testCases {
		body, err := Encode(testCase.input)
		require.Nil(t, err, testCase.description)
		assert.False(t, body.Multipart, testCase.description)
		assert.Equal(t, ContentTypeJSON, body.ContentType, testCase.description)
		assert.Equal(t, testCase.expect, string(body.Bytes()), testCase.description)
		assert.Equal(t, len(testCase.expect), body.Len(), testCase.description)
	}
}

func TestEncode_Multipart(t *testing.T) {
	picture := payload.NewAttachment("me.png", []byte("png-data"))
	input := Transcode(payload.ObjectOf("empNo", "E1", "departmentId", 3, "salary", 1234.5,
		"active", true, "middleName", nil, "profilePicture", picture), text.Wire)
	body, err := Encode(input)
	require.Nil(t, err)
	assert.True(t, body.Multipart)
	parts := readParts(t, body)
	assert.EqualValues(t, []part{
		{name: "emp_no", value: "E1"},
		{name: "department_id", value: "3"},
		{name: "salary", value: "1234.5"},
		{name: "active", value: "true"},
		{name: "middle_name", value: ""},
		{name: "profile_picture", fileName: "me.png", value: "png-data"},
	}, parts)
}

func TestEncode_MultipartTwoParts(t *testing.T) {
	body, err := Encode(payload.ObjectOf("empNo", "E1", "profilePicture", []byte("raw")))
	require.Nil(t, err)
	parts := readParts(t, body)
	assert.EqualValues(t, []part{
		{name: "empNo", value: "E1"},
		{name: "profilePicture", fileName: "profilePicture", value: "raw"},
	}, parts)
	assert.True(t, HasAttachment(map[string]interface{}{"file": strings.NewReader("x")}))
	assert.False(t, HasAttachment([]interface{}{[]byte("x")}))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk failure")
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(payload.ObjectOf("file", failingReader{}))
	require.NotNil(t, err)
	assert.True(t, IsEncodingError(err))
	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, "file", encErr.Field)
	assert.False(t, encErr.Retryable())

	_, err = Encode(payload.ObjectOf("file", []byte("x"), "callback", func() {}))
	assert.True(t, IsEncodingError(err))

	_, err = Encode(payload.ObjectOf("callback", make(chan int)))
	assert.True(t, IsEncodingError(err))
	assert.False(t, IsEncodingError(errors.New("network")))

	body, err := Encode(nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, body.Len())
}
