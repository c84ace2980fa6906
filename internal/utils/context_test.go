package utils

import (
	"context"
	"testing"
)

func TestGetEthPublicFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), EthPublicCtxKey, "0xabc")

	ethPublic, ok := GetEthPublicFromContext(ctx)
	if !ok {
		t.Fatal("expected wallet address to be present in context")
	}
	if ethPublic != "0xabc" {
		t.Errorf("expected 0xabc, got %s", ethPublic)
	}
}

func TestGetEthPublicFromContext_Missing(t *testing.T) {
	if _, ok := GetEthPublicFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetClientIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, "device-1")

	clientID, ok := GetClientIDFromContext(ctx)
	if !ok {
		t.Fatal("expected client id to be present in context")
	}
	if clientID != "device-1" {
		t.Errorf("expected device-1, got %s", clientID)
	}
}

func TestGetClientIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientIDCtxKey, 42)

	if _, ok := GetClientIDFromContext(ctx); ok {
		t.Error("expected ok=false for value of wrong type")
	}
}
