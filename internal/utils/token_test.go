package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_Generate_ValidUUIDv4(t *testing.T) {
	g := NewTokenGenerator()

	token := g.Generate()

	parsed, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestTokenGenerator_Generate_Unique(t *testing.T) {
	g := NewTokenGenerator()

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		token := g.Generate()
		_, dup := seen[token]
		require.False(t, dup, "duplicate token generated: %s", token)
		seen[token] = struct{}{}
	}
}
