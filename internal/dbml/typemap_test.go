package dbml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		// textual
		{"Text", "string"},
		{"URL", "string"},
		{"Email", "string"},
		{"Phone number", "string"},
		{"Language code", "string"},
		{"Currency code", "string"},
		{"Timezone", "string"},
		{"Color", "string"},
		{"ID", "string"},
		{"Unique ID", "string"},
		{"Foreign ID referencing stops.stop_id", "string"},
		{"Enum", "string"},
		// numeric
		{"Integer", "int"},
		{"Non-negative integer", "int"},
		{"Non-zero integer", "int"},
		{"Positive integer", "int"},
		{"Float", "float"},
		{"Non-negative float", "float"},
		{"Latitude", "float"},
		{"Longitude", "float"},
		{"Currency amount", "float"},
		// temporal
		{"Date", "date"},
		{"Time", "time"},
		{"Local time", "time"},
		{"Datetime", "datetime"},
		{"Timestamp", "datetime"},
		// normalization and fallback
		{"  text  ", "string"},
		{"TEXT", "string"},
		{"", "string"},
		{"something nobody has heard of", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.label))
		})
	}
}

// The mapping table is order-sensitive: a more specific label must win over a
// label it has as a prefix.
func TestMapTypePrefixPrecedence(t *testing.T) {
	assert.Equal(t, "datetime", MapType("datetime"))
	assert.Equal(t, "date", MapType("date"))
	assert.Equal(t, "datetime", MapType("timestamp"))
	assert.Equal(t, "time", MapType("time"))
	assert.Equal(t, "string", MapType("timezone"))
}
