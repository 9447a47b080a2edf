// Package htmldoc renders the field definitions document as a set of static
// HTML reference pages: an index page plus one page per feed file.
package htmldoc

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/simovilab/gtfs-ontology/internal/dbml"
	"github.com/simovilab/gtfs-ontology/internal/naming"
	"github.com/simovilab/gtfs-ontology/internal/spec"
)

type siteData struct {
	Title  string
	Tables []tablePage
}

type tablePage struct {
	Title       string
	SiteTitle   string
	Table       string
	File        string
	Description string
	Fields      []fieldRow
}

type fieldRow struct {
	Name        string
	Type        string
	RawType     string
	Presence    string
	Description string
	Notes       string
	PrimaryKey  bool
	ForeignKey  string
	Options     []spec.Option
}

// Generate writes the HTML reference into outputDir, creating it as needed.
// It produces index.html and one <table>.html per feed file.
func Generate(logger *slog.Logger, outputDir string, doc *spec.Document) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	site := buildSite(doc)

	indexPath := filepath.Join(outputDir, "index.html")
	if err := renderPage(indexPath, indexTemplate, site); err != nil {
		return err
	}
	logger.Debug("Generated index page", "path", indexPath)

	for _, page := range site.Tables {
		pagePath := filepath.Join(outputDir, page.Table+".html")
		if err := renderPage(pagePath, tableTemplate, page); err != nil {
			return err
		}
		logger.Debug("Generated table page", "table", page.Table, "path", pagePath)
	}

	logger.Info("HTML reference generated", "output", outputDir, "pages", len(site.Tables)+1)
	return nil
}

func buildSite(doc *spec.Document) siteData {
	site := siteData{Title: "GTFS Field Definitions"}
	if title, ok := doc.Metadata["title"].(string); ok && title != "" {
		site.Title = title
	}

	for _, file := range doc.FieldDefinitions.Files {
		page := tablePage{
			Title:       naming.TitleWords(dbml.NormalizeTableName(file.Name)),
			SiteTitle:   site.Title,
			Table:       dbml.NormalizeTableName(file.Name),
			File:        file.Name,
			Description: doc.DatasetFiles.Files.Description(file.Name),
		}
		for _, field := range file.Fields {
			page.Fields = append(page.Fields, fieldRow{
				Name:        field.Name,
				Type:        dbml.MapType(field.Type),
				RawType:     field.Type,
				Presence:    field.Presence,
				Description: field.Description,
				Notes:       field.Notes,
				PrimaryKey:  file.PrimaryKey.Contains(field.Name),
				ForeignKey:  field.ForeignKey,
				Options:     field.Options,
			})
		}
		site.Tables = append(site.Tables, page)
	}
	return site
}

func renderPage(path, tmplText string, data any) error {
	tmpl := template.Must(template.New(filepath.Base(path)).Parse(tmplText))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return f.Close()
}
