package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewMessageCipher(t *testing.T) {
	t.Run("Valid Key", func(t *testing.T) {
		c, err := NewMessageCipher(testKey)
		require.NoError(t, err)
		require.NotNil(t, c)
	})

	t.Run("Key Too Short", func(t *testing.T) {
		c, err := NewMessageCipher("00112233")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 32 bytes")
		assert.Nil(t, c)
	})

	t.Run("Not Hex", func(t *testing.T) {
		c, err := NewMessageCipher(strings.Repeat("zz", 32))
		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMessageCipher_RoundTrip(t *testing.T) {
	c, err := NewMessageCipher(testKey)
	require.NoError(t, err)

	plaintexts := []string{
		"",
		"hello",
		"a longer message with spaces, punctuation! and unicode: नमस्ते",
		strings.Repeat("x", 10000),
	}

	for _, plaintext := range plaintexts {
		encrypted, err := c.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, encrypted)

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestMessageCipher_NonDeterministic(t *testing.T) {
	c, err := NewMessageCipher(testKey)
	require.NoError(t, err)

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	// Random nonces mean equal plaintexts never produce equal ciphertexts.
	assert.NotEqual(t, first, second)
}

func TestMessageCipher_Decrypt_Failures(t *testing.T) {
	c, err := NewMessageCipher(testKey)
	require.NoError(t, err)

	valid, err := c.Encrypt("message")
	require.NoError(t, err)

	t.Run("Not Base64", func(t *testing.T) {
		_, err := c.Decrypt("!!not-base64!!")
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})

	t.Run("Too Short For Nonce", func(t *testing.T) {
		_, err := c.Decrypt(base64.StdEncoding.EncodeToString([]byte("tiny")))
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})

	t.Run("Tampered Ciphertext", func(t *testing.T) {
		raw, err := base64.StdEncoding.DecodeString(valid)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0xff

		_, err = c.Decrypt(base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})

	t.Run("Wrong Key", func(t *testing.T) {
		other, err := NewMessageCipher(strings.Repeat("ff", 32))
		require.NoError(t, err)

		_, err = other.Decrypt(valid)
		assert.ErrorIs(t, err, ErrDecryptFailed)
	})
}
