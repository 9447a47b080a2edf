package dbml

import (
	"fmt"
	"strings"

	"github.com/simovilab/gtfs-ontology/internal/spec"
)

// tableExtensions lists the feed file suffixes stripped to form table names,
// checked in order; the first match wins.
var tableExtensions = []string{".txt", ".geojson"}

// NormalizeTableName strips a known feed file extension from name. Names
// without a known extension pass through unchanged.
func NormalizeTableName(name string) string {
	for _, ext := range tableExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// EscapeNote backslash-escapes double quotes so the text can sit inside a
// DBML quoted note.
func EscapeNote(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// ComposeNote joins a field's description and notes into a single escaped
// note body. An empty result means no note attribute should be emitted.
func ComposeNote(description, notes string) string {
	parts := make([]string, 0, 2)
	if description != "" {
		parts = append(parts, description)
	}
	if notes != "" {
		parts = append(parts, notes)
	}
	return EscapeNote(strings.Join(parts, " "))
}

// Build derives the DBML schema from a parsed field definitions document.
// Enum definitions are collected across all files and deduplicated by their
// derived name; the first occurrence wins and later fields with the same
// derived name reuse the existing definition as their column type.
func Build(doc *spec.Document) *Schema {
	s := &Schema{
		ProjectName: projectName(doc.Metadata),
		ProjectNote: projectNote(doc.Metadata),
	}

	seenEnums := make(map[string]bool)
	for _, file := range doc.FieldDefinitions.Files {
		tableName := NormalizeTableName(file.Name)
		table := Table{
			Name: tableName,
			Note: EscapeNote(doc.DatasetFiles.Files.Description(file.Name)),
		}

		for _, field := range file.Fields {
			col := Column{Name: field.Name, Type: MapType(field.Type)}

			if enumName, options, ok := extractEnum(tableName, field); ok {
				col.Type = enumName
				if !seenEnums[enumName] {
					seenEnums[enumName] = true
					s.Enums = append(s.Enums, Enum{Name: enumName, Options: options})
				}
			}

			col.Attrs = buildAttrs(file, field)
			table.Columns = append(table.Columns, col)
		}

		s.Tables = append(s.Tables, table)
	}

	return s
}

// extractEnum derives an enum definition for fields typed "enum" that carry
// options. Options without a value are dropped; if none survive, the field
// is not treated as an enum at all.
func extractEnum(tableName string, field spec.Field) (string, []EnumOption, bool) {
	if !strings.EqualFold(strings.TrimSpace(field.Type), "enum") || len(field.Options) == 0 {
		return "", nil, false
	}
	options := make([]EnumOption, 0, len(field.Options))
	for _, opt := range field.Options {
		if opt.Value == "" {
			continue
		}
		options = append(options, EnumOption{
			Value:       string(opt.Value),
			Description: EscapeNote(opt.Description),
		})
	}
	if len(options) == 0 {
		return "", nil, false
	}
	return fmt.Sprintf("%s_%s_options", tableName, field.Name), options, true
}

// buildAttrs renders the column attribute fragments in their fixed output
// order: not null, pk, default, ref, note.
func buildAttrs(file spec.File, field spec.Field) []string {
	var attrs []string

	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(field.Presence)), "required") {
		attrs = append(attrs, "not null")
	}

	// Primary keys must be declared on the file; a *_id field name alone is
	// not enough (several non-key GTFS fields end in _id).
	if file.PrimaryKey.Contains(field.Name) {
		attrs = append(attrs, "pk")
	}

	if field.Default != nil {
		if field.Default.IsString {
			attrs = append(attrs, fmt.Sprintf("default: '%s'", field.Default))
		} else {
			attrs = append(attrs, fmt.Sprintf("default: %s", field.Default))
		}
	}

	if field.ForeignKey != "" {
		attrs = append(attrs, "ref: > "+field.ForeignKey)
	}

	if note := ComposeNote(field.Description, field.Notes); note != "" {
		attrs = append(attrs, `note: "`+note+`"`)
	}

	return attrs
}

func projectName(metadata map[string]any) string {
	if name, ok := metadata["name"].(string); ok && name != "" {
		return sanitizeIdentifier(name)
	}
	return ""
}

func projectNote(metadata map[string]any) string {
	parts := make([]string, 0, 2)
	if desc, ok := metadata["description"].(string); ok && desc != "" {
		parts = append(parts, desc)
	}
	if version, ok := metadata["version"].(string); ok && version != "" {
		parts = append(parts, "Version "+version+".")
	}
	return EscapeNote(strings.Join(parts, " "))
}

func sanitizeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.':
			b.WriteByte('_')
		}
	}
	return b.String()
}
