package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	a, err := NewToken(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := NewToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewToken_TailleParDefaut(t *testing.T) {
	tok, err := NewToken(0)
	require.NoError(t, err)
	assert.Len(t, tok, 64)
}

func TestHashToken_Deterministe(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
