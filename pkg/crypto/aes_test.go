package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestKeyFromHex(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	_, err = KeyFromHex("deadbeef")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = KeyFromHex("not-hex")
	assert.Error(t, err)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	require.NoError(t, err)

	enc, err := Encrypt(key, "AB123456")
	require.NoError(t, err)
	assert.NotContains(t, enc, "AB123456")

	plain, err := Decrypt(key, enc)
	require.NoError(t, err)
	assert.Equal(t, "AB123456", plain)
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	require.NoError(t, err)

	a, err := Encrypt(key, "same input")
	require.NoError(t, err)
	b, err := Encrypt(key, "same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	require.NoError(t, err)
	other, err := KeyFromHex(strings.Repeat("ff", 32))
	require.NoError(t, err)

	enc, err := Encrypt(key, "secret")
	require.NoError(t, err)

	_, err = Decrypt(other, enc)
	assert.Error(t, err)
}

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash("AB123456"), Hash("AB123456"))
	assert.NotEqual(t, Hash("AB123456"), Hash("AB123457"))
	assert.Len(t, Hash("x"), 64)
}
