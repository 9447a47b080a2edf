package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"agency", "Agency"},
		{"stop_times", "Stop Times"},
		{"fare-rules", "Fare Rules"},
		{"LOCATION_GROUPS", "Location Groups"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleWords(tt.in))
	}
}
