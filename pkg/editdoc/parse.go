package editdoc

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/textedits/pkg/fsutil"
	"github.com/yaklabco/textedits/pkg/textedit"
)

//go:embed schema.json
var schemaJSON string

//nolint:gochecknoglobals // Schema is compiled once and shared.
var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	})
	if schemaErr != nil {
		return nil, fmt.Errorf("compile edit document schema: %w", schemaErr)
	}
	return schema, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Document, error) {
	return parse("", data, format)
}

// Load reads, decodes and validates the document at path.
// The format is inferred from the file extension.
func Load(ctx context.Context, path string) (*Document, error) {
	return LoadAs(ctx, path, FormatFromPath(path))
}

// LoadAs is Load with an explicit format.
func LoadAs(ctx context.Context, path string, format Format) (*Document, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read edit document: %w", err)
	}
	return parse(path, content, format)
}

// LoadEditSet is Load followed by Document.EditSet.
func LoadEditSet(ctx context.Context, path string) (textedit.EditSet, error) {
	doc, err := Load(ctx, path)
	if err != nil {
		return textedit.None(), err
	}
	return doc.EditSet(), nil
}

func parse(source string, data []byte, format Format) (*Document, error) {
	var loader gojsonschema.JSONLoader

	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, &DocumentError{Source: source, Issues: []string{"malformed JSON"}}
		}
		loader = gojsonschema.NewBytesLoader(data)
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &DocumentError{Source: source, Issues: []string{err.Error()}}
		}
		loader = gojsonschema.NewGoLoader(raw)
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}

	if err := validate(source, loader); err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := decode(data, format, doc); err != nil {
		return nil, &DocumentError{Source: source, Issues: []string{err.Error()}}
	}
	return doc, nil
}

func validate(source string, loader gojsonschema.JSONLoader) error {
	compiled, err := loadSchema()
	if err != nil {
		return err
	}

	result, err := compiled.Validate(loader)
	if err != nil {
		return &DocumentError{Source: source, Issues: []string{err.Error()}}
	}
	if result.Valid() {
		return nil
	}

	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return &DocumentError{Source: source, Issues: issues}
}

func decode(data []byte, format Format, doc *Document) error {
	if format == FormatJSON {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return decoder.Decode(doc)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Marshal encodes a document in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode edit document: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode edit document: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("close encoder: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}
