package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Node", "node"},
		{"SimpleClone", "simple_clone"},
		{"SimpleCloneExplicit", "simple_clone_explicit"},
		{"HTTPServer", "http_server"},
		{"userID", "user_id"},
		{"nodeV2", "node_v2"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.in))
		})
	}
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "sample", PkgAlias("clone-generator/sample"))
	assert.Empty(t, PkgAlias(""))
}
