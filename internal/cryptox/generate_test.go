package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePasswordLengthAndCharset(t *testing.T) {
	pw, err := GeneratePassword(12, true)
	require.NoError(t, err)
	assert.Len(t, pw, 12)

	full := lowercaseLetters + uppercaseLetters + digits + symbols
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(full, r), "unexpected rune %q", r)
	}
}

func TestGeneratePasswordNoSymbols(t *testing.T) {
	pw, err := GeneratePassword(64, false)
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(pw, symbols), "symbols present in %q", pw)
}

func TestGeneratePasswordInvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := GeneratePassword(n, true)
		assert.Error(t, err)
	}
}

func TestGeneratePasswordNotDeterministic(t *testing.T) {
	a, err := GeneratePassword(16, true)
	require.NoError(t, err)
	b, err := GeneratePassword(16, true)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
