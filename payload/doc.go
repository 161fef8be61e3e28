// Package payload defines the untyped request/response body tree exchanged with the directory API.
//
// A payload is built from scalars, ordered sequences and keyed mappings. Keyed mappings are
// represented by *Object which preserves key insertion order, so multipart bodies can be
// written in the same order as the fields were declared. Binary attachments (*Attachment,
// []byte, *os.File, any io.Reader) are opaque leaves.
package payload
