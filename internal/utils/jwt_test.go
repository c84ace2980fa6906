package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	ethPublic := "0xabc123"
	clientID := "device-1"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, ethPublic, clientID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.Token)
	if !ok {
		t.Fatal("could not cast claims to models.Token")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != ethPublic {
		t.Errorf("expected subject %q, got %s", ethPublic, claims.Subject)
	}
	if claims.ClientID != clientID {
		t.Errorf("expected client_id %q, got %s", clientID, claims.ClientID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		ethPublic string
		clientID  string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "0xabc", "device-1", time.Hour, "key"},
		{"empty wallet address", "iss", "", "device-1", time.Hour, "key"},
		{"empty client id", "iss", "0xabc", "", time.Hour, "key"},
		{"zero duration", "iss", "0xabc", "device-1", 0, "key"},
		{"empty key", "iss", "0xabc", "device-1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.ethPublic, tt.clientID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	ethPublic := "0xdef456"
	clientID := "device-2"
	key := "secret-key"
	duration := time.Minute * 5

	// First generate a valid token
	genToken, _ := GenerateJWTToken(issuer, ethPublic, clientID, duration, key)

	// Now validate it
	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.EthPublic != ethPublic {
		t.Errorf("expected wallet address %s, got %s", ethPublic, parsedToken.EthPublic)
	}
	if parsedToken.ClientID != clientID {
		t.Errorf("expected client id %s, got %s", clientID, parsedToken.ClientID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, "0xabc", "device-1", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"

	genToken, _ := GenerateJWTToken("issuer-a", "0xabc", "device-1", time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b")
	if err == nil {
		t.Error("expected error due to issuer mismatch, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected token abc.def.ghi, got %s", token)
	}

	for _, header := range []string{"", "Bearer", "Bearer ", "abc.def.ghi"} {
		if _, err := ParseBearerToken(header); err == nil {
			t.Errorf("expected error for header %q, got nil", header)
		}
	}
}

func TestGenerateJWTToken_ThreeSegments(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", "0xabc", "device-1", time.Hour, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got := len(strings.Split(genToken.SignedString, ".")); got != 3 {
		t.Errorf("expected compact JWS with 3 segments, got %d", got)
	}
}
