// Package editdoc reads edit documents: YAML or JSON files listing the text
// edits to apply to a single target.
//
// A document looks like:
//
//	edits:
//	  - start: 0
//	    length: 5
//	    replacement: "hi"
//
// Documents are checked against an embedded JSON schema before decoding.
// Offsets are not range-checked here; that happens when the resulting set is
// applied to a text.
package editdoc

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/textedits/pkg/textedit"
)

// ErrInvalidDocument indicates a document that cannot be decoded or does not
// match the schema.
var ErrInvalidDocument = errors.New("invalid edit document")

// Format is the serialization format of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown document format %q (expected yaml or json)", name)
	}
}

// FormatFromPath infers the format from a file extension.
// Files without a recognized extension are read as YAML, which also accepts JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Document is the decoded form of an edit document.
type Document struct {
	Edits []Edit `json:"edits" yaml:"edits"`
}

// Edit is a single entry of a document.
type Edit struct {
	Start       int    `json:"start" yaml:"start"`
	Length      int    `json:"length" yaml:"length"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
}

// EditSet converts the document into an edit set. Edits with equal start
// offsets keep their document order.
func (d *Document) EditSet() textedit.EditSet {
	if d == nil || len(d.Edits) == 0 {
		return textedit.None()
	}
	builder := textedit.NewBuilder()
	for _, e := range d.Edits {
		builder.Add(textedit.NewEdit(e.Start, e.Length, e.Replacement))
	}
	return builder.Build()
}

// FromEditSet builds a document holding the edits of set in sorted order.
func FromEditSet(set textedit.EditSet) *Document {
	doc := &Document{Edits: make([]Edit, 0, set.Len())}
	for _, e := range set.All() {
		doc.Edits = append(doc.Edits, Edit{
			Start:       e.Start,
			Length:      e.Length,
			Replacement: e.Replacement,
		})
	}
	return doc
}

// DocumentError describes a document that failed to decode or validate.
type DocumentError struct {
	// Source names the document, usually its path.
	Source string

	// Issues lists each problem found.
	Issues []string
}

func (e *DocumentError) Error() string {
	source := e.Source
	if source == "" {
		source = "edit document"
	}
	if len(e.Issues) == 0 {
		return fmt.Sprintf("%s: %s", source, ErrInvalidDocument)
	}
	return fmt.Sprintf("%s: %s: %s", source, ErrInvalidDocument, strings.Join(e.Issues, "; "))
}

// Unwrap returns ErrInvalidDocument.
func (e *DocumentError) Unwrap() error {
	return ErrInvalidDocument
}
