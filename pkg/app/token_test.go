package app

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "user-secret",
		Expiry:    24 * time.Hour,
		Issuer:    "test-issuer",
	})

	username := "a@x.com"
	passwordHash := "deadbeef"

	token, err := tm.Generate(username, passwordHash)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Username != username {
		t.Errorf("Expected username %q, got %q", username, claims.Username)
	}
	if claims.PasswordHash != passwordHash {
		t.Errorf("Expected password hash %q, got %q", passwordHash, claims.PasswordHash)
	}

	// ExpiresAt is stored with second precision; allow 1s of slack.
	expectedExp := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt.Unix() < expectedExp.Unix()-1 || claims.ExpiresAt.Unix() > expectedExp.Unix()+1 {
		t.Errorf("Expected ExpiresAt around %v, got %v", expectedExp, claims.ExpiresAt)
	}

	// Wrong secret key.
	tmWrongKey := NewTokenManager(TokenConfig{SecretKey: "wrong-secret"})
	wrongToken, _ := tmWrongKey.Generate(username, passwordHash)
	if _, err := tm.Parse(wrongToken); err == nil {
		t.Error("Expected error when parsing token with wrong secret key, but got nil")
	}

	// Tampered token.
	if _, err := tm.Parse(token + "tampered"); err == nil {
		t.Error("Expected error for tampered token, but got nil")
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(TokenConfig{
		SecretKey: "user-secret",
		Expiry:    -time.Minute,
	})

	token, err := tm.Generate("a@x.com", "deadbeef")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := tm.Parse(token); err == nil {
		t.Error("Expected error for expired token, but got nil")
	}
}

func TestTokenManager_Defaults(t *testing.T) {
	tm := NewTokenManager(TokenConfig{SecretKey: "user-secret"})

	token, err := tm.Generate("a@x.com", "deadbeef")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.Issuer != DefaultTokenIssuer {
		t.Errorf("Expected default issuer %q, got %q", DefaultTokenIssuer, claims.Issuer)
	}

	expectedExp := time.Now().Add(DefaultTokenExpiry)
	if claims.ExpiresAt.Unix() < expectedExp.Unix()-1 || claims.ExpiresAt.Unix() > expectedExp.Unix()+1 {
		t.Errorf("Expected default expiry around %v, got %v", expectedExp, claims.ExpiresAt)
	}
}
