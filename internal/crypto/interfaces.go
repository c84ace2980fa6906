package crypto

// MetadataCipher encrypts and decrypts the serialized metadata record for
// at-rest storage. The symmetric key is derived from the wallet's seed
// phrase, so the record can be decrypted on any device that holds the
// wallet without sharing key material through the replicas.
type MetadataCipher interface {
	// Encrypt seals plaintext under a key derived from seedPhrase and
	// returns a self-contained blob (salt, nonce and ciphertext).
	Encrypt(seedPhrase string, plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Returns an error if the
	// blob is malformed or the seed phrase does not match.
	Decrypt(seedPhrase string, blob []byte) ([]byte, error)
}
