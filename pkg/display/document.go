package display

import (
	"bytes"
	"errors"
)

// Document pairs the raw bytes of one display file with the Source they came
// from. The payload stays undecoded on purpose: loaders and the orchestrator
// pass documents around without committing to the codec, and callers decode
// once they need the structured form.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument wraps a payload, rejecting inputs a later Decode could only
// fail on. The bytes are copied so callers cannot alias the stored payload.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("display: source is required")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Document{}, errors.New("display: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin the payload was fetched from.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Decode parses the payload into its structured form.
func (d Document) Decode() (FormDisplay, error) {
	return Decode(d.raw)
}

// Location returns the origin's address, or empty for the zero Document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
