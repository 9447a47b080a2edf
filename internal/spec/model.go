// Package spec models the GTFS field definitions YAML document.
//
// The document carries three top-level sections: free-form metadata, the
// field definitions for every logical feed file, and short descriptions of
// the dataset files themselves. Converters consume a parsed Document and
// never touch the YAML layer directly.
package spec

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Document is the root of the field definitions YAML.
type Document struct {
	Metadata         map[string]any   `yaml:"metadata"`
	FieldDefinitions FieldDefinitions `yaml:"field_definitions"`
	DatasetFiles     DatasetFiles     `yaml:"dataset_files"`
}

// FieldDefinitions holds the per-file field listings.
type FieldDefinitions struct {
	Files FileList `yaml:"files"`
}

// File describes one logical feed file (e.g., "agency.txt") and its fields.
type File struct {
	Name       string     `yaml:"name"`
	PrimaryKey StringList `yaml:"primary_key"`
	Fields     []Field    `yaml:"fields"`
}

// Field describes one column of a feed file.
type Field struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Presence    string   `yaml:"presence"`
	Description string   `yaml:"description"`
	Notes       string   `yaml:"notes"`
	Options     []Option `yaml:"options"`
	Default     *Scalar  `yaml:"default"`
	ForeignKey  string   `yaml:"foreign_key"`
}

// Option is one permitted value of an enum-typed field.
type Option struct {
	Value       FlexString `yaml:"value"`
	Description string     `yaml:"description"`
}

// DatasetFiles holds the name-keyed descriptions of the dataset files.
type DatasetFiles struct {
	Files DatasetFileList `yaml:"files"`
}

// DatasetFileInfo pairs a dataset file name with its description.
type DatasetFileInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// FileList accepts both of the layouts the YAML uses for file listings:
// a sequence of file mappings, or a mapping keyed by file name. In the
// mapping form the key becomes the file's Name; document order is kept.
type FileList []File

func (l *FileList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var files []File
		if err := node.Decode(&files); err != nil {
			return err
		}
		for i, f := range files {
			if f.Name == "" {
				return fmt.Errorf("files[%d]: missing name (line %d)", i, node.Content[i].Line)
			}
		}
		*l = files
		return nil
	case yaml.MappingNode:
		files := make([]File, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			var f File
			if val.Kind != yaml.ScalarNode || val.Tag != "!!null" {
				if err := val.Decode(&f); err != nil {
					return fmt.Errorf("file %q: %w", key.Value, err)
				}
			}
			f.Name = key.Value
			files = append(files, f)
		}
		*l = files
		return nil
	default:
		return fmt.Errorf("files: expected sequence or mapping, got %s (line %d)", kindName(node.Kind), node.Line)
	}
}

// StringList accepts a single scalar or a sequence of scalars.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return err
		}
		*l = values
		return nil
	default:
		return fmt.Errorf("expected scalar or sequence, got %s (line %d)", kindName(node.Kind), node.Line)
	}
}

// Contains reports whether name is one of the listed values.
func (l StringList) Contains(name string) bool {
	for _, v := range l {
		if v == name {
			return true
		}
	}
	return false
}

// FlexString decodes any YAML scalar to its textual form, so enum values
// written as bare numbers (0, 1, 2) come through unchanged.
type FlexString string

func (s *FlexString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar, got %s (line %d)", kindName(node.Kind), node.Line)
	}
	if node.Tag == "!!null" {
		*s = ""
		return nil
	}
	*s = FlexString(node.Value)
	return nil
}

// Scalar holds a default value while remembering whether it was a YAML
// string. DBML quotes string defaults but leaves numeric ones bare.
type Scalar struct {
	Value    any
	IsString bool
}

func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected scalar default, got %s (line %d)", kindName(node.Kind), node.Line)
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	s.Value = v
	_, s.IsString = v.(string)
	return nil
}

// String renders the scalar the way it appeared in the document.
func (s *Scalar) String() string {
	return fmt.Sprint(s.Value)
}

// DatasetFileList accepts a mapping keyed by file name (values are either a
// bare description string or a mapping with a description key) or a sequence
// of entries carrying their own name.
type DatasetFileList []DatasetFileInfo

func (l *DatasetFileList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		entries := make([]DatasetFileInfo, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			info := DatasetFileInfo{Name: key.Value}
			switch val.Kind {
			case yaml.ScalarNode:
				if val.Tag != "!!null" {
					info.Description = val.Value
				}
			case yaml.MappingNode:
				if err := val.Decode(&info); err != nil {
					return fmt.Errorf("dataset file %q: %w", key.Value, err)
				}
				info.Name = key.Value
			default:
				return fmt.Errorf("dataset file %q: expected scalar or mapping (line %d)", key.Value, val.Line)
			}
			entries = append(entries, info)
		}
		*l = entries
		return nil
	case yaml.SequenceNode:
		var entries []DatasetFileInfo
		if err := node.Decode(&entries); err != nil {
			return err
		}
		*l = entries
		return nil
	default:
		return fmt.Errorf("dataset files: expected mapping or sequence, got %s (line %d)", kindName(node.Kind), node.Line)
	}
}

// Description returns the description recorded for the named dataset file,
// or "" when the file is not listed.
func (l DatasetFileList) Description(name string) string {
	for _, e := range l {
		if e.Name == name {
			return e.Description
		}
	}
	return ""
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
