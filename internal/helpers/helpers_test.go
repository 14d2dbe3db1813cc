package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Spätburgunder Reserve", "sp-tburgunder-reserve"},
		{"Riesling Kabinett 2022", "riesling-kabinett-2022"},
		{"  Trimmed  Name  ", "trimmed-name"},
		{"Wine & Cheese!", "wine-cheese"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.in), "input %q", tt.in)
	}
}
