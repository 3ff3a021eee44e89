package models

// Document describes an uploaded attachment. Only metadata is held; file
// bodies are out of scope. The engine keeps at most one current document,
// last accepted wins.
type Document struct {
	Name      string
	MimeType  string
	SizeBytes int64
}
