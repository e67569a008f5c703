package compiler

import (
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamerIdent(t *testing.T) {
	n := NewNamer([]string{"Reserved"})

	tests := []struct {
		in   string
		want string
	}{
		{"AgentID", "AgentID"},
		{"agent_id", "AgentId"},
		{"test1", "Test1"},
		{"type", "Type"},
		{"camera-center", "CameraCenter"},
		{"  padded  ", "Padded"},
		{"3D", "X3D"},
		{"Encode", "Encode_"},
		{"MessageNumber", "MessageNumber_"},
		{"Reserved", "Reserved_"},
		{"", "X"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Ident(tt.in), "Ident(%q)", tt.in)
	}
}

func TestNamerIdentKeywordsNeedNoEscape(t *testing.T) {
	n := NewNamer(nil)
	for _, kw := range []string{"break", "func", "range", "type", "var"} {
		id := n.Ident(kw)
		assert.False(t, token.IsKeyword(id), "Ident(%q) = %q", kw, id)
		assert.True(t, token.IsExported(id), "Ident(%q) = %q", kw, id)
		assert.False(t, strings.HasSuffix(id, "_"), "Ident(%q) = %q", kw, id)
	}
}

func TestNamerIdentNormalizesUnicode(t *testing.T) {
	n := NewNamer(nil)
	// "é" precomposed and as e + combining acute.
	assert.Equal(t, n.Ident("caf\u00e9"), n.Ident("cafe\u0301"))
	assert.Equal(t, "Café", n.Ident("café"))
}
