package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// shortIDBytes of randomness encode to exactly 8 base64url characters.
const shortIDBytes = 6

// ShortIDGenerator produces compact URL-safe upload handles. The
// randomness source is injected so tests can seed it; the default is
// crypto/rand, which is safe for concurrent use.
type ShortIDGenerator struct {
	rand io.Reader
}

func NewShortIDGenerator(r io.Reader) *ShortIDGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &ShortIDGenerator{rand: r}
}

func (g *ShortIDGenerator) Generate() (string, error) {
	var buf [shortIDBytes]byte
	if _, err := io.ReadFull(g.rand, buf[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf[:]), nil
}
