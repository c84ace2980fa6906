package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ClientIDClaim is the private claim carrying the replica client's stable
// identifier. The server uses it as the advisory lock owner.
const ClientIDClaim = "client_id"

// Token wraps a JWT used to authenticate replica calls against the metadata
// KV server. Tokens are minted by the client with an HMAC key shared with
// the server; the "sub" claim carries the wallet's Ethereum address and the
// ClientIDClaim carries the device's client id.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard claim set (RFC 7519).
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// EthPublic is the wallet address extracted from the "sub" claim.
	EthPublic string `json:"-"`

	// ClientID is the lock-owner identifier carried in ClientIDClaim.
	ClientID string `json:"client_id,omitempty"`
}

// GetEthPublic extracts the wallet address from the token's "sub" claim.
// Returns an error if the claim is missing or empty.
func (t *Token) GetEthPublic() (string, error) {
	ethPublic, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting wallet address from token: %w", err)
	}
	if ethPublic == "" {
		return "", fmt.Errorf("empty wallet address in token subject")
	}
	return ethPublic, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
