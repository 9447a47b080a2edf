package dbml

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/simovilab/gtfs-ontology/internal/configpaths"
)

const schemaTemplate = `// Generated from the GTFS field definitions YAML. Do not edit by hand.
{{- if .ProjectName}}

Project {{.ProjectName}} {
  database_type: 'generic'
{{- if .ProjectNote}}
  Note: "{{.ProjectNote}}"
{{- end}}
}
{{- end}}
{{- range .Enums}}

enum {{.Name}} {
{{- range .Options}}
  "{{.Value}}"{{if .Description}} [note: "{{.Description}}"]{{end}}
{{- end}}
}
{{- end}}
{{- range .Tables}}

Table {{.Name}} {
{{- range .Columns}}
  {{.Name}} {{.Type}}{{if .Attrs}} [{{join .Attrs ", "}}]{{end}}
{{- end}}
{{- if .Note}}

  Note: "{{.Note}}"
{{- end}}
}
{{- end}}
`

// Render writes the schema as DBML text.
func Render(w io.Writer, s *Schema) error {
	tmpl := template.Must(template.New("schema").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(schemaTemplate))
	return tmpl.Execute(w, s)
}

// WriteFile renders the schema to path, creating parent directories as
// needed.
func WriteFile(path string, s *Schema) error {
	if err := configpaths.EnsureDir(path); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := Render(f, s); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return f.Close()
}
