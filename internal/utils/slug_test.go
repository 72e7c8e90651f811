package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "Summer Lookbook", "summer-lookbook"},
		{"mixed_case", "My FIRST Post", "my-first-post"},
		{"apostrophe", "Bride's Guide", "brides-guide"},
		{"ampersand", "Hair & Makeup", "hair-and-makeup"},
		{"slash", "Skincare/Routine", "skincare-routine"},
		{"punctuation", "Top 10 Tips!", "top-10-tips"},
		{"extra_spaces", "  spaced   out  ", "spaced-out"},
		{"already_slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}
