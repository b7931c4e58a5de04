package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	fields := []string{"Author", "Reviewer", "Meta", "Title", "Tags"}

	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{name: "typo", input: "Auther", limit: 3, expected: []string{"Author"}},
		{name: "case and separator", input: "re_viewer", limit: 3, expected: []string{"Reviewer"}},
		{name: "no close match", input: "Created", limit: 3, expected: []string{}},
		{name: "exact match is not a suggestion", input: "Title", limit: 3, expected: []string{}},
		{name: "marker option", input: "nodep", limit: 1, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.input, fields, tt.limit))
		})
	}
}

func TestSuggest_OrderAndLimit(t *testing.T) {
	candidates := []string{"nodeep", "include", "exclude"}

	assert.Equal(t, []string{"nodeep"}, Suggest("nodep", candidates, 1))
	assert.Equal(t, []string{"exclude", "include"}, Suggest("xclude", candidates, 0))
	assert.Equal(t, []string{"exclude"}, Suggest("xclude", candidates, 1))
}
