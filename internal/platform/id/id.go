package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque session identifiers.
type Generator interface {
	New() string
}

// RandomHex produces 128-bit identifiers rendered as 32 hex characters.
// Prefixes of these ids are what users type to reference a session.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
