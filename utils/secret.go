package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// IsBcryptHash reports whether the configured secret looks like a bcrypt hash
func IsBcryptHash(secret string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(secret, prefix) {
			return true
		}
	}
	return false
}

// SecretMatches compares a provided secret against the configured one.
// Plain secrets are compared in constant time over their SHA-256 digests so
// neither content nor length leaks through timing.
func SecretMatches(configured, provided string) bool {
	if configured == "" {
		return false
	}
	if IsBcryptHash(configured) {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(provided)) == nil
	}
	want := sha256.Sum256([]byte(configured))
	got := sha256.Sum256([]byte(provided))
	return subtle.ConstantTimeCompare(want[:], got[:]) == 1
}
