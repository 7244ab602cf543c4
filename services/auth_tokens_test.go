package services

import (
	"testing"
	"time"
)

func TestAuthTokens_RoundTrip(t *testing.T) {
	svc := &AuthTokensService{SigningSecret: "test-secret"}
	token, err := svc.CreateToken(42, time.Now())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	userID, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("VerifyToken user id = %d, want 42", userID)
	}
}

func TestAuthTokens_Expired(t *testing.T) {
	svc := &AuthTokensService{SigningSecret: "test-secret"}
	issued := time.Now().Add(-SessionTokenTTL - time.Hour)
	token, err := svc.CreateToken(42, issued)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := svc.VerifyToken(token); err == nil {
		t.Error("expired token should fail verification")
	}
}

func TestAuthTokens_Tampered(t *testing.T) {
	svc := &AuthTokensService{SigningSecret: "test-secret"}
	token, err := svc.CreateToken(42, time.Now())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.VerifyToken(tampered); err == nil {
		t.Error("tampered token should fail verification")
	}
}

func TestAuthTokens_WrongSecret(t *testing.T) {
	issuer := &AuthTokensService{SigningSecret: "secret-a"}
	verifier := &AuthTokensService{SigningSecret: "secret-b"}
	token, err := issuer.CreateToken(42, time.Now())
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if _, err := verifier.VerifyToken(token); err == nil {
		t.Error("token signed with another secret should fail verification")
	}
}

func TestAuthTokens_Garbage(t *testing.T) {
	svc := &AuthTokensService{SigningSecret: "test-secret"}
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyToken(raw); err == nil {
			t.Errorf("VerifyToken(%q) should fail", raw)
		}
	}
}
