package amenities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Fire Pit", "fire-pit"},
		{"already a slug", "wifi", "wifi"},
		{"mixed case with punctuation", "Pet-Friendly (Dogs)", "pet-friendly-dogs"},
		{"leading and trailing spaces", "  Hot Showers  ", "hot-showers"},
		{"repeated separators", "RV // Hookup", "rv-hookup"},
		{"numbers kept", "24/7 Access", "24-7-access"},
		{"symbols stripped at edges", "***Premium***", "premium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
