package transcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/viant/personnel/payload"
	"github.com/viant/personnel/visitor"
)

const (
	// ContentTypeJSON JSON body content type
	ContentTypeJSON = "application/json"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Body represents encoded request body
type Body struct {
	ContentType string
	Multipart   bool
	data        []byte
}

// Bytes returns encoded body
func (b *Body) Bytes() []byte {
	return b.data
}

// Reader returns encoded body reader
func (b *Body) Reader() io.Reader {
	return bytes.NewReader(b.data)
}

// Len returns encoded body size
func (b *Body) Len() int {
	return len(b.data)
}

// HasAttachment returns true if any value of a flat keyed mapping is a binary attachment
func HasAttachment(value interface{}) bool {
	found := false
	_ = visitFields(value, func(_ string, item interface{}) (bool, error) {
		found = payload.IsBinary(item)
		return !found, nil
	})
	return found
}

// Encode encodes already transcoded payload, a flat mapping with at least one binary attachment
// is encoded as multipart form data, anything else as JSON.
func Encode(value interface{}) (*Body, error) {
	if value == nil {
		return &Body{}, nil
	}
	if HasAttachment(value) {
		return encodeMultipart(value)
	}
	data, err := payload.Marshal(value)
	if err != nil {
		return nil, newEncodingError("", err)
	}
	return &Body{ContentType: ContentTypeJSON, data: data}, nil
}

func encodeMultipart(value interface{}) (*Body, error) {
	buffer := new(bytes.Buffer)
	writer := multipart.NewWriter(buffer)
	err := visitFields(value, func(key string, item interface{}) (bool, error) {
		if payload.IsBinary(item) {
			return true, writeAttachment(writer, key, item)
		}
		text, err := formValue(item)
		if err != nil {
			return false, newEncodingError(key, err)
		}
		if err = writer.WriteField(key, text); err != nil {
			return false, newEncodingError(key, err)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, newEncodingError("", err)
	}
	return &Body{ContentType: writer.FormDataContentType(), Multipart: true, data: buffer.Bytes()}, nil
}

func writeAttachment(writer *multipart.Writer, key string, value interface{}) error {
	fileName := key
	contentType := "application/octet-stream"
	var reader io.Reader
	switch actual := value.(type) {
	case *payload.Attachment:
		if actual.Name != "" {
			fileName = actual.Name
		}
		contentType = actual.MimeType()
		var err error
		if reader, err = actual.Open(); err != nil {
			return newEncodingError(key, err)
		}
	case []byte:
		reader = bytes.NewReader(actual)
	case *os.File:
		fileName = filepath.Base(actual.Name())
		reader = actual
	case io.Reader:
		reader = actual
	default:
		return newEncodingError(key, fmt.Errorf("unsupported attachment type: %T", value))
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(key), quoteEscaper.Replace(fileName)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return newEncodingError(key, err)
	}
	if _, err = io.Copy(part, reader); err != nil {
		return newEncodingError(key, err)
	}
	return nil
}

// formValue returns natural string representation of a form field
func formValue(value interface{}) (string, error) {
	switch actual := value.(type) {
	case nil:
		return "", nil
	case string:
		return actual, nil
	case bool:
		return strconv.FormatBool(actual), nil
	case int:
		return strconv.Itoa(actual), nil
	case int8:
		return strconv.FormatInt(int64(actual), 10), nil
	case int16:
		return strconv.FormatInt(int64(actual), 10), nil
	case int32:
		return strconv.FormatInt(int64(actual), 10), nil
	case int64:
		return strconv.FormatInt(actual, 10), nil
	case uint:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(actual), 10), nil
	case uint64:
		return strconv.FormatUint(actual, 10), nil
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), nil
	case json.Number:
		return actual.String(), nil
	case time.Time:
		return actual.Format(time.RFC3339), nil
	case fmt.Stringer:
		return actual.String(), nil
	}
	data, err := payload.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// visitFields visits top level fields of a flat keyed mapping, anything else is not visited
func visitFields(value interface{}, f func(key string, item interface{}) (bool, error)) error {
	switch actual := value.(type) {
	case *payload.Object:
		return actual.Visit(f)
	}
	if !visitor.IsStringKeyMap(value) {
		return nil
	}
	visit, err := visitor.AnyMapVisitorOf(value)
	if err != nil {
		return err
	}
	return visit(f)
}
