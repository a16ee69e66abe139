// Package cipher implements the symmetric string cipher used for session
// cookies and stored user passwords. The payload format is
// base64(nonce || AES-256-GCM ciphertext); the key is derived once from the
// process secret with scrypt.
package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// ErrDecrypt is returned on any decryption failure: malformed base64, a
// truncated payload, or a key mismatch. Callers must treat it as "invalid
// ciphertext", never as a partial result.
var ErrDecrypt = errors.New("cipher: decryption failed")

// kdfSalt is fixed so every process with the same secret derives the same
// key. Rotating the secret invalidates all outstanding ciphertexts.
var kdfSalt = []byte("siriart-billing-admin.v1")

// Cipher encrypts and decrypts strings with a process-wide derived key.
type Cipher struct {
	aead cipher.AEAD
}

// New derives the AEAD key from secret. An empty secret is a configuration
// error and must abort startup.
func New(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("cipher: secret key is not set")
	}

	key, err := scrypt.Key([]byte(secret), kdfSalt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("cipher: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under the process key with a random nonce.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("cipher: nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Any failure yields ErrDecrypt.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(raw) < c.aead.NonceSize() {
		return "", fmt.Errorf("%w: payload too short", ErrDecrypt)
	}

	nonce, sealed := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return string(plain), nil
}
