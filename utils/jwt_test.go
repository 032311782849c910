package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "tuli", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, role, err := ExtractIdentityFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIdentityFromToken: %v", err)
	}
	if userID != 42 || role != "tuli" {
		t.Fatalf("got %d/%s", userID, role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken(42, "tuli", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractIdentityFromToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestVerificationTokenClaims(t *testing.T) {
	token, err := GenerateVerificationToken(7, 5*time.Minute)
	if err != nil {
		t.Fatalf("GenerateVerificationToken: %v", err)
	}

	userID, jti, err := ExtractVerificationClaims(token)
	if err != nil {
		t.Fatalf("ExtractVerificationClaims: %v", err)
	}
	if userID != 7 || jti == "" {
		t.Fatalf("got userID=%d jti=%q", userID, jti)
	}

	// Two tokens never share a jti.
	second, err := GenerateVerificationToken(7, 5*time.Minute)
	if err != nil {
		t.Fatalf("GenerateVerificationToken: %v", err)
	}
	_, jti2, err := ExtractVerificationClaims(second)
	if err != nil {
		t.Fatalf("ExtractVerificationClaims: %v", err)
	}
	if jti2 == jti {
		t.Fatal("jti reused across tokens")
	}
}

func TestAccessTokenIsNotVerificationToken(t *testing.T) {
	token, err := GenerateToken(42, "tuli", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, _, err := ExtractVerificationClaims(token); err == nil {
		t.Fatal("access token accepted as a verification token")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("abc")
	if a != HashToken("abc") {
		t.Fatal("hash not deterministic")
	}
	if a == HashToken("abd") {
		t.Fatal("distinct inputs collide")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d", len(a))
	}
}
