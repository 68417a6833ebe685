package auth

import (
	"crypto/rand"
	"encoding/base64"
)

const tokenBytes = 32

// NewToken returns an opaque URL-safe session token carrying 256 bits of
// entropy. Tokens are bearer credentials; collisions are negligible.
func NewToken() string {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		panic("auth: read random token: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
