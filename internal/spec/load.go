package spec

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// ParseError wraps a YAML decoding or structural validation failure so
// callers can tell malformed input apart from I/O problems.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return "parse field definitions: " + e.Err.Error()
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and parses the field definitions document at path. Read errors
// keep their os error chain (errors.Is(err, fs.ErrNotExist) works); decoding
// and validation failures come back as a *ParseError.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse decodes and validates a field definitions document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := doc.validate(); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &doc, nil
}

func (d *Document) validate() error {
	for i, f := range d.FieldDefinitions.Files {
		if f.Name == "" {
			return fmt.Errorf("files[%d]: missing name", i)
		}
		for j, fld := range f.Fields {
			if fld.Name == "" {
				return fmt.Errorf("file %q: fields[%d]: missing name", f.Name, j)
			}
		}
	}
	return nil
}
