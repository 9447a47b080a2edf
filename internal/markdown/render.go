// Package markdown renders the field definitions document as reference
// documentation. A default template is built in; callers may point at a
// custom template file instead.
package markdown

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/simovilab/gtfs-ontology/internal/configpaths"
	"github.com/simovilab/gtfs-ontology/internal/dbml"
	"github.com/simovilab/gtfs-ontology/internal/naming"
	"github.com/simovilab/gtfs-ontology/internal/spec"
)

const defaultTemplate = `# {{with meta .Metadata "title"}}{{.}}{{else}}GTFS Field Definitions{{end}}
{{- with meta .Metadata "description"}}

{{.}}
{{- end}}
{{- with meta .Metadata "revised"}}

Revised {{formatDate .}}.
{{- end}}
{{- if .DatasetFiles}}

## Dataset Files

| File | Description |
|------|-------------|
{{- range .DatasetFiles}}
| ` + "`{{.Name}}`" + ` | {{.Description}} |
{{- end}}
{{- end}}
{{- range .Files}}

## {{title .Table}} (` + "`{{.Name}}`" + `)
{{- with .Description}}

{{.}}
{{- end}}

| Field | Type | Presence | Description |
|-------|------|----------|-------------|
{{- range .Fields}}
| ` + "`{{.Name}}`" + ` | {{.Type}} | {{.Presence}} | {{.Description}}{{with .Notes}} {{.}}{{end}} |
{{- end}}
{{- range .Fields}}
{{- if .Options}}

Values for ` + "`{{.Name}}`" + `:

{{range .Options}}- ` + "`{{.Value}}`" + `{{with .Description}}: {{.}}{{end}}
{{end}}
{{- end}}
{{- end}}
{{- end}}
`

// Options controls rendering.
type Options struct {
	// TemplatePath overrides the built-in template when set.
	TemplatePath string
}

type templateData struct {
	Metadata     map[string]any
	DatasetFiles []spec.DatasetFileInfo
	Files        []fileSection
}

type fileSection struct {
	spec.File
	Table       string
	Description string
}

// FormatDate converts a YYYY-MM-DD date string to "Month DD, YYYY". It is
// exposed to templates as formatDate.
func FormatDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("format date %q: %w", s, err)
	}
	return t.Format("January 02, 2006"), nil
}

// Render writes the document as Markdown.
func Render(w io.Writer, doc *spec.Document, opts Options) error {
	tmpl := template.New("schedule").Funcs(template.FuncMap{
		"formatDate": FormatDate,
		"title":      naming.TitleWords,
		"meta":       metaString,
	})

	text := defaultTemplate
	if opts.TemplatePath != "" {
		custom, err := os.ReadFile(opts.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		text = string(custom)
	}
	tmpl, err := tmpl.Parse(text)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	data := templateData{
		Metadata:     doc.Metadata,
		DatasetFiles: doc.DatasetFiles.Files,
	}
	for _, f := range doc.FieldDefinitions.Files {
		data.Files = append(data.Files, fileSection{
			File:        f,
			Table:       dbml.NormalizeTableName(f.Name),
			Description: doc.DatasetFiles.Files.Description(f.Name),
		})
	}

	return tmpl.Execute(w, data)
}

// WriteFile renders the document to path, creating parent directories as
// needed.
func WriteFile(path string, doc *spec.Document, opts Options) error {
	if err := configpaths.EnsureDir(path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := Render(f, doc, opts); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return f.Close()
}

func metaString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
