package cryptoprovider

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrCiphertextTooShort indicates a ciphertext shorter than one nonce,
// which cannot have come from Encrypt.
var ErrCiphertextTooShort = errors.New("cryptoprovider: ciphertext shorter than a nonce")

// ChaCha20Poly1305 implements Provider with an AEAD seal/open per call,
// prepending a freshly drawn nonce to the sealed output so Decrypt is
// self-contained.
type ChaCha20Poly1305 struct {
	key [chacha20poly1305.KeySize]byte
}

// NewChaCha20Poly1305 returns a Provider bound to key.
func NewChaCha20Poly1305(key [chacha20poly1305.KeySize]byte) *ChaCha20Poly1305 {
	return &ChaCha20Poly1305{key: key}
}

// Encrypt draws a random 12-byte nonce via crypto/rand, seals plaintext
// under it, and returns nonce‖ciphertext.
func (c *ChaCha20Poly1305) Encrypt(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.key[:])
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt splits the leading nonce off ciphertext and opens the
// remainder, failing if the AEAD tag does not verify (wrong key, wrong
// nonce, or tampered bytes).
func (c *ChaCha20Poly1305) Decrypt(ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.key[:])
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, ErrCiphertextTooShort
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("cryptoprovider: decrypt failed: %w", err)
	}
	return plaintext, nil
}
