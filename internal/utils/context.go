// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EthPublicCtxKey is the key used to store the authenticated wallet address
// in the context. Used together with GetEthPublicFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.EthPublicCtxKey, "0xabc...")
var EthPublicCtxKey = contextKey("ethPublic")

// ClientIDCtxKey is the key used to store the calling device's client
// identifier in the context. The server uses it as the advisory lock owner.
var ClientIDCtxKey = contextKey("clientID")

// GetEthPublicFromContext retrieves the wallet address from the context.
//
// Returns the address and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetEthPublicFromContext(ctx context.Context) (string, bool) {
	ethPublic, ok := ctx.Value(EthPublicCtxKey).(string)
	return ethPublic, ok
}

// GetClientIDFromContext retrieves the client identifier from the context.
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDCtxKey).(string)
	return clientID, ok
}
