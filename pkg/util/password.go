package util

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost parameters. Do not change these values: changing any of
// them makes the same input produce a different digest, invalidating
// every stored password hash.
const (
	argonTime    = 8
	argonMemory  = 16
	argonThreads = 2
	argonKeyLen  = 16
)

// GeneratePasswordHash derives the argon2id digest of password keyed with
// the server-side secret salt and returns it hex encoded.
func GeneratePasswordHash(password, secretSalt string) string {
	digest := argon2.IDKey([]byte(password), []byte(secretSalt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(digest)
}

// CheckPasswordHash recomputes the digest with identical parameters and
// compares it byte for byte in constant time.
func CheckPasswordHash(hash, password, secretSalt string) bool {
	candidate := GeneratePasswordHash(password, secretSalt)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(candidate)) == 1
}
