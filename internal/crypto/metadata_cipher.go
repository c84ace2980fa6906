// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrDecryptionFailed is returned when a blob cannot be opened, either
// because it was produced under a different seed phrase or because it was
// corrupted in storage.
var ErrDecryptionFailed = errors.New("metadata decryption failed")

// encryptedMetadata is the serialized form of one sealed record.
// A fresh salt per blob keeps the derived key unique even though the seed
// phrase never changes.
type encryptedMetadata struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// metadataCipher is the private implementation of [MetadataCipher].
type metadataCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewMetadataCipher constructs a [MetadataCipher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewMetadataCipher() MetadataCipher {
	return &metadataCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// Encrypt implements [MetadataCipher]. It derives a 256-bit key from
// seedPhrase and a fresh 16-byte salt using Argon2id, then seals plaintext
// with AES-256-GCM. The salt and nonce travel inside the returned JSON blob
// so Decrypt needs nothing beyond the seed phrase.
func (c *metadataCipher) Encrypt(seedPhrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.aead(seedPhrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := encryptedMetadata{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, plaintext, nil),
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return nil, fmt.Errorf("encode encrypted metadata: %w", err)
	}
	return data, nil
}

// Decrypt implements [MetadataCipher]. It re-derives the key from the
// blob's stored salt and opens the ciphertext. Any authentication failure
// maps to [ErrDecryptionFailed].
func (c *metadataCipher) Decrypt(seedPhrase string, blob []byte) ([]byte, error) {
	var sealed encryptedMetadata
	if err := json.Unmarshal(blob, &sealed); err != nil {
		return nil, fmt.Errorf("decode encrypted metadata: %w", err)
	}

	gcm, err := c.aead(seedPhrase, sealed.Salt)
	if err != nil {
		return nil, err
	}

	if len(sealed.Nonce) != gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, sealed.Nonce, sealed.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (c *metadataCipher) aead(seedPhrase string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		[]byte(seedPhrase),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return gcm, nil
}
