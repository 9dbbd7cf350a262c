package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTokenLength(t *testing.T) {
	for _, n := range []int{4, 12, 32} {
		assert.Len(t, NewToken(n), n)
	}
}

func TestNewTokenAlphabet(t *testing.T) {
	token := NewToken(200)
	for _, r := range token {
		assert.True(t, strings.ContainsRune(tokenRunes, r), "unexpected rune %q", r)
	}
}

func TestNewTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken(12)
		assert.False(t, seen[token], "duplicate token %s", token)
		seen[token] = true
	}
}

func TestGetUUID(t *testing.T) {
	a, b := GetUUID(), GetUUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
