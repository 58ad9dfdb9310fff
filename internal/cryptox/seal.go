// Package cryptox seals persisted record payloads with XChaCha20-Poly1305.
// A sealed value is the 24-byte nonce followed by the AEAD ciphertext.
package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/dmitrijs2005/rockside/internal/common"
)

const KeySize = chacha20poly1305.KeySize

var ErrMalformed = errors.New("malformed sealed value")

// NewKey returns a random key suitable for Seal and Open. Its signature
// matches storage.Repository.GetOrCreate.
func NewKey() ([]byte, error) {
	return common.GenerateRandByteArray(KeySize), nil
}

// Seal encrypts plaintext under key. The associated data binds the value to
// its storage key so sealed payloads cannot be swapped between slots.
func Seal(key, plaintext, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, ad), nil
}

// Open reverses Seal. Any tampering, wrong key or wrong associated data
// yields an error.
func Open(key, sealed, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrMalformed
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return plaintext, nil
}
