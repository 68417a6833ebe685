package auth

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFormat(t *testing.T) {
	stored := Hash("secret123")

	salt, hash, ok := strings.Cut(stored, "$")
	require.True(t, ok, "stored value must contain a separator")
	assert.Len(t, salt, 32)
	assert.Len(t, hash, 64)

	_, err := hex.DecodeString(salt)
	require.NoError(t, err)
	_, err = hex.DecodeString(hash)
	require.NoError(t, err)
}

func TestVerifyRoundTrip(t *testing.T) {
	passwords := []string{"secret123", "", "pässwörd", "a very long passphrase with spaces"}
	for _, p := range passwords {
		assert.True(t, Verify(p, Hash(p)), "password %q must verify against its own hash", p)
	}
}

func TestVerifyWrongPassword(t *testing.T) {
	stored := Hash("secret123")
	assert.False(t, Verify("secret124", stored))
	assert.False(t, Verify("", stored))
}

func TestHashSaltsDiffer(t *testing.T) {
	first := Hash("secret123")
	second := Hash("secret123")

	assert.NotEqual(t, first, second, "fresh salts must produce distinct hashes")
	assert.True(t, Verify("secret123", first))
	assert.True(t, Verify("secret123", second))
}

func TestHashWithSaltDeterministic(t *testing.T) {
	first := HashWithSalt("secret123", "00112233445566778899aabbccddeeff")
	second := HashWithSalt("secret123", "00112233445566778899aabbccddeeff")
	assert.Equal(t, first, second)
}

func TestVerifyMalformedStored(t *testing.T) {
	for _, stored := range []string{
		"",
		"not-a-valid-format",
		"$",
		"salt$",
		"$hash",
		"plain-hex-without-separator",
	} {
		assert.False(t, Verify("secret123", stored), "stored %q must not verify", stored)
	}
}
