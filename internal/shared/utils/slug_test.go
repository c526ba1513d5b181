package utils

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
		{"simple title", "Hello World", "hello-world"},
		{"mixed case", "My First Post", "my-first-post"},
		{"diacritics folded", "Crème brûlée à gogo", "creme-brulee-a-gogo"},
		{"polish and nordic letters", "Łódź smörgåsbord øre", "lodz-smorgasbord-ore"},
		{"punctuation dropped", "What's new?! (2024)", "whats-new-2024"},
		{"hyphen runs collapse", "a -- b --- c", "a-b-c"},
		{"leading and trailing trimmed", "  --hello--  ", "hello"},
		{"digits survive", "Top 10 tips", "top-10-tips"},
		{"only symbols yields empty", "!!!???", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantPage    int
		wantLimit   int
		wantOffset  int
	}{
		{"defaults applied", 0, 0, 1, 10, 0},
		{"negative page clamped", -3, 20, 1, 20, 0},
		{"limit capped", 2, 500, 2, 100, 100},
		{"plain values kept", 3, 25, 3, 25, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PageParams{Page: tt.page, Limit: tt.limit}
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}
