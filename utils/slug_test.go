package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapses", "Top 10 Gadgets!", "top-10-gadgets"},
		{"multiple separators", "A -- B__C", "a-b-c"},
		{"leading and trailing junk", "  !Deals! ", "deals"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"uppercase", "BUYING GUIDES 2024", "buying-guides-2024"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
