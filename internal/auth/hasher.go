package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100_000
	keyBytes   = 32
)

// Hash derives a salted password hash in the form "salt$hash", both parts
// hex-encoded. A fresh random salt is generated on every call.
func Hash(password string) string {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		panic("auth: read random salt: " + err.Error())
	}
	return HashWithSalt(password, hex.EncodeToString(salt))
}

// HashWithSalt derives the hash with a caller-supplied salt string. The salt
// is consumed as its literal UTF-8 bytes, so the same salt always yields the
// same output for a given password.
func HashWithSalt(password, salt string) string {
	derived := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha256.New)
	return salt + "$" + hex.EncodeToString(derived)
}

// Verify reports whether password matches a stored "salt$hash" value.
// Malformed stored values never match. The comparison is constant time.
func Verify(password, stored string) bool {
	salt, expected, ok := strings.Cut(stored, "$")
	if !ok || salt == "" || expected == "" {
		return false
	}
	derived := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha256.New)
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(derived)), []byte(expected)) == 1
}
