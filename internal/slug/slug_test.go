package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Rina dan Budi", "rina-dan-budi"},
		{"uppercase", "PERNIKAHAN AGUNG", "pernikahan-agung"},
		{"diacritics stripped", "Café Señorita", "cafe-senorita"},
		{"punctuation collapsed", "Rina & Budi!", "rina-budi"},
		{"leading and trailing symbols", "--Rina--", "rina"},
		{"multiple spaces", "rina    budi", "rina-budi"},
		{"digits kept", "wedding 2026", "wedding-2026"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generate(tt.input))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("rina-dan-budi"))
	assert.True(t, Valid("wedding-2026"))
	assert.True(t, Valid("abc"))

	assert.False(t, Valid("ab"), "below minimum length")
	assert.False(t, Valid("Rina-Budi"), "uppercase not allowed")
	assert.False(t, Valid("rina budi"), "spaces not allowed")
	assert.False(t, Valid("rina_budi"), "underscore not allowed")
	assert.False(t, Valid(""))
}
