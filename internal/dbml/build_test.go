package dbml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simovilab/gtfs-ontology/internal/dbml"
	"github.com/simovilab/gtfs-ontology/internal/spec"
)

func parseDoc(t *testing.T, src string) *spec.Document {
	t.Helper()
	doc, err := spec.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestNormalizeTableName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"agency.txt", "agency"},
		{"locations.geojson", "locations"},
		{"translations", "translations"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dbml.NormalizeTableName(tt.in))
	}
}

func TestComposeNote(t *testing.T) {
	tests := []struct {
		name        string
		description string
		notes       string
		want        string
	}{
		{"description only", "Stop latitude", "", "Stop latitude"},
		{"description and notes", "Stop latitude", "WGS 84", "Stop latitude WGS 84"},
		{"notes only", "", "WGS 84", "WGS 84"},
		{"empty", "", "", ""},
		{"embedded quote", `He said "hi"`, "", `He said \"hi\"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dbml.ComposeNote(tt.description, tt.notes))
		})
	}
}

func TestBuildMinimalDocument(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: agency.txt
      primary_key: agency_id
      fields:
        - name: agency_id
          type: id
        - name: agency_name
          type: text
          presence: required
`)
	schema := dbml.Build(doc)

	require.Len(t, schema.Tables, 1)
	table := schema.Tables[0]
	assert.Equal(t, "agency", table.Name)
	require.Len(t, table.Columns, 2)

	assert.Equal(t, "agency_id", table.Columns[0].Name)
	assert.Equal(t, "string", table.Columns[0].Type)
	assert.Equal(t, []string{"pk"}, table.Columns[0].Attrs)

	assert.Equal(t, "agency_name", table.Columns[1].Name)
	assert.Equal(t, "string", table.Columns[1].Type)
	assert.Equal(t, []string{"not null"}, table.Columns[1].Attrs)
}

func TestBuildPrimaryKeyRequiresDeclaration(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: stops.txt
      primary_key: stop_id
      fields:
        - name: stop_id
          type: Unique ID
        - name: zone_id
          type: ID
`)
	schema := dbml.Build(doc)

	cols := schema.Tables[0].Columns
	assert.Contains(t, cols[0].Attrs, "pk")
	// zone_id ends in _id but is not declared, so it must not become a key.
	assert.NotContains(t, cols[1].Attrs, "pk")
}

func TestBuildCompositePrimaryKey(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: stop_times.txt
      primary_key: [trip_id, stop_sequence]
      fields:
        - name: trip_id
          type: Foreign ID
        - name: stop_sequence
          type: Non-negative integer
        - name: stop_id
          type: Foreign ID
`)
	schema := dbml.Build(doc)

	cols := schema.Tables[0].Columns
	assert.Contains(t, cols[0].Attrs, "pk")
	assert.Contains(t, cols[1].Attrs, "pk")
	assert.NotContains(t, cols[2].Attrs, "pk")
}

func TestBuildEnumExtraction(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: stops.txt
      fields:
        - name: location_type
          type: Enum
          options:
            - value: 0
              description: Stop or platform.
            - value: 1
              description: Station.
            - description: missing value, dropped
`)
	schema := dbml.Build(doc)

	require.Len(t, schema.Enums, 1)
	enum := schema.Enums[0]
	assert.Equal(t, "stops_location_type_options", enum.Name)
	require.Len(t, enum.Options, 2)
	assert.Equal(t, "0", enum.Options[0].Value)
	assert.Equal(t, "Station.", enum.Options[1].Description)

	assert.Equal(t, "stops_location_type_options", schema.Tables[0].Columns[0].Type)
}

func TestBuildEnumWithoutOptionsFallsBackToString(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: stops.txt
      fields:
        - name: wheelchair_boarding
          type: Enum
`)
	schema := dbml.Build(doc)

	assert.Empty(t, schema.Enums)
	assert.Equal(t, "string", schema.Tables[0].Columns[0].Type)
}

func TestBuildEnumDeduplication(t *testing.T) {
	// a.txt/b_c and a_b.txt/c both derive the enum name a_b_c_options.
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: a.txt
      fields:
        - name: b_c
          type: Enum
          options:
            - value: 0
              description: First definition wins.
    - name: a_b.txt
      fields:
        - name: c
          type: Enum
          options:
            - value: 9
              description: Never emitted.
`)
	schema := dbml.Build(doc)

	require.Len(t, schema.Enums, 1)
	assert.Equal(t, "a_b_c_options", schema.Enums[0].Name)
	assert.Equal(t, "First definition wins.", schema.Enums[0].Options[0].Description)

	assert.Equal(t, "a_b_c_options", schema.Tables[0].Columns[0].Type)
	assert.Equal(t, "a_b_c_options", schema.Tables[1].Columns[0].Type)
}

func TestBuildDefaultsAndForeignKeys(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: routes.txt
      fields:
        - name: route_color
          type: Color
          default: FFFFFF
        - name: route_sort_order
          type: Non-negative integer
          default: 0
        - name: agency_id
          type: Foreign ID referencing agency.agency_id
          foreign_key: agency.agency_id
`)
	schema := dbml.Build(doc)

	cols := schema.Tables[0].Columns
	assert.Equal(t, []string{"default: 'FFFFFF'"}, cols[0].Attrs)
	assert.Equal(t, []string{"default: 0"}, cols[1].Attrs)
	assert.Equal(t, []string{"ref: > agency.agency_id"}, cols[2].Attrs)
}

func TestBuildAttrOrder(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: stops.txt
      primary_key: stop_id
      fields:
        - name: stop_id
          type: Unique ID
          presence: Required
          description: Identifies a stop.
          foreign_key: other.stop_id
          default: "0"
`)
	schema := dbml.Build(doc)

	assert.Equal(t, []string{
		"not null",
		"pk",
		"default: '0'",
		"ref: > other.stop_id",
		`note: "Identifies a stop."`,
	}, schema.Tables[0].Columns[0].Attrs)
}

func TestBuildTableNote(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: agency.txt
      fields:
        - name: agency_id
          type: ID
dataset_files:
  files:
    agency.txt: Transit agencies.
`)
	schema := dbml.Build(doc)
	assert.Equal(t, "Transit agencies.", schema.Tables[0].Note)
}

func TestBuildConditionallyRequiredIsNotRequired(t *testing.T) {
	doc := parseDoc(t, `
field_definitions:
  files:
    - name: agency.txt
      fields:
        - name: agency_id
          type: ID
          presence: Conditionally Required
`)
	schema := dbml.Build(doc)
	assert.Empty(t, schema.Tables[0].Columns[0].Attrs)
}
