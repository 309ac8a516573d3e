package models

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// NewID returns a 24-character lowercase hex identifier, the native
// primary-key format of the store.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic("models: failed to read random bytes: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// ValidID reports whether s is a well-formed identifier.
func ValidID(s string) bool {
	return idPattern.MatchString(s)
}
