// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataCipher_RoundTrip(t *testing.T) {
	c := NewMetadataCipher()
	plaintext := []byte(`{"eth_public":"0xabc","device_name":"iPhone"}`)

	blob, err := c.Encrypt("salute wreck glove ...", plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "iPhone", "blob не должен содержать открытый текст")

	decrypted, err := c.Decrypt("salute wreck glove ...", blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestMetadataCipher_WrongSeedPhrase(t *testing.T) {
	c := NewMetadataCipher()

	blob, err := c.Encrypt("correct seed phrase", []byte("payload"))
	require.NoError(t, err)

	_, err = c.Decrypt("wrong seed phrase", blob)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestMetadataCipher_UniqueBlobs(t *testing.T) {
	c := NewMetadataCipher()

	first, err := c.Encrypt("seed", []byte("payload"))
	require.NoError(t, err)
	second, err := c.Encrypt("seed", []byte("payload"))
	require.NoError(t, err)

	// свежая соль и nonce на каждый вызов
	assert.NotEqual(t, first, second)
}

func TestMetadataCipher_MalformedBlob(t *testing.T) {
	c := NewMetadataCipher()

	_, err := c.Decrypt("seed", []byte("not json"))
	require.Error(t, err)

	_, err = c.Decrypt("seed", []byte(`{"salt":"","nonce":"","ciphertext":""}`))
	require.ErrorIs(t, err, ErrDecryptionFailed)
}
