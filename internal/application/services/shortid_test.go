package services

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortIDGenerator_Generate(t *testing.T) {
	g := NewShortIDGenerator(nil)

	seen := make(map[string]struct{})
	re := regexp.MustCompile(`^[A-Za-z0-9_-]{8}$`)

	for i := 0; i < 1000; i++ {
		id, err := g.Generate()
		require.NoError(t, err)

		assert.Len(t, id, 8)
		assert.Regexp(t, re, id)
		assert.NotContains(t, id, "=")

		seen[id] = struct{}{}
	}

	// 1000 draws from a 2^48 space should never collide
	assert.Len(t, seen, 1000)
}

func TestShortIDGenerator_SeededSource(t *testing.T) {
	src := bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	g := NewShortIDGenerator(src)

	id, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAA", id)

	id, err = g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "________", id)
}

func TestShortIDGenerator_ExhaustedSource(t *testing.T) {
	g := NewShortIDGenerator(bytes.NewReader([]byte{0x01, 0x02}))

	_, err := g.Generate()
	assert.Error(t, err)
}
