// Package transcode rewrites payload keys between naming conventions and encodes
// outgoing payloads either as JSON or, when binary attachments are present, as multipart form data.
//
// Outgoing payloads are transcoded first (local to wire convention) and then encoded:
//
//	body, err := transcode.Encode(transcode.Transcode(obj, text.Wire))
//
// Incoming payloads are decoded and transcoded back to the local convention:
//
//	value := transcode.Transcode(decoded, text.Local)
package transcode
