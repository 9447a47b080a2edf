// Package dbml turns a parsed field definitions document into a DBML schema:
// enum definitions extracted from enum-typed fields followed by one Table
// block per feed file.
package dbml

// Schema is the fully derived DBML document, ready for rendering.
type Schema struct {
	ProjectName string
	ProjectNote string
	Enums       []Enum
	Tables      []Table
}

// Enum is a named set of permitted values shared by one or more columns.
type Enum struct {
	Name    string
	Options []EnumOption
}

// EnumOption is one permitted value with an optional note.
type EnumOption struct {
	Value       string
	Description string
}

// Table is one feed file rendered as a DBML table.
type Table struct {
	Name    string
	Note    string
	Columns []Column
}

// Column carries a DBML type (primitive tag or enum name) and the already
// rendered attribute fragments in their output order.
type Column struct {
	Name  string
	Type  string
	Attrs []string
}
