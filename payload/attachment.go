package payload

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
)

// Attachment represents binary file content
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
	Reader      io.Reader
}

// NewAttachment creates an in memory attachment
func NewAttachment(name string, data []byte) *Attachment {
	return &Attachment{Name: name, Data: data, ContentType: contentType(name)}
}

// OpenAttachment loads file content as an attachment
func OpenAttachment(location string) (*Attachment, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to load attachment %v: %w", location, err)
	}
	return NewAttachment(filepath.Base(location), data), nil
}

// Open returns attachment content reader
func (a *Attachment) Open() (io.Reader, error) {
	if a.Reader != nil {
		return a.Reader, nil
	}
	if a.Data == nil {
		return nil, fmt.Errorf("attachment %v has no content", a.Name)
	}
	return bytes.NewReader(a.Data), nil
}

// MimeType returns content type, defaults to application/octet-stream
func (a *Attachment) MimeType() string {
	if a.ContentType != "" {
		return a.ContentType
	}
	return "application/octet-stream"
}

// IsBinary returns true if value is an opaque binary blob or file handle
func IsBinary(value interface{}) bool {
	switch actual := value.(type) {
	case *Attachment:
		return actual != nil
	case []byte:
		return true
	case *os.File:
		return actual != nil
	case io.Reader:
		return actual != nil
	}
	return false
}

func contentType(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		return mime.TypeByExtension(ext)
	}
	return ""
}
