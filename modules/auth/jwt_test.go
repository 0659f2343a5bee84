package auth

import (
	"testing"
	"time"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SecretKey:     "test-secret-key",
		TokenDuration: 15 * time.Minute,
		Issuer:        "test-issuer",
	}
}

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token, err := manager.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.Subject != "alice" {
		t.Errorf("claims.Subject = %v, want %v", claims.Subject, "alice")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("claims.Issuer = %v, want %v", claims.Issuer, "test-issuer")
	}
	if claims.ID == "" {
		t.Error("claims.ID is empty, want a unique token id")
	}
}

func TestJWTManager_UniqueTokenIDs(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token1, err := manager.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	token2, err := manager.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token1 == token2 {
		t.Error("two logins produced identical tokens")
	}

	claims1, err := manager.ValidateToken(token1)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	claims2, err := manager.ValidateToken(token2)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims1.ID == claims2.ID {
		t.Error("two tokens share the same jti")
	}
}

func TestJWTManager_InvalidToken(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "random string",
			token: "not.a.valid.token",
		},
		{
			name:  "malformed jwt",
			token: "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.ValidateToken(tt.token)
			if err == nil {
				t.Error("ValidateToken() should return error for invalid token")
			}
		})
	}
}

func TestJWTManager_WrongSecretKey(t *testing.T) {
	config1 := testJWTConfig()
	config2 := testJWTConfig()
	config2.SecretKey = "a-different-secret"

	manager1 := NewJWTManager(config1)
	manager2 := NewJWTManager(config2)

	token, err := manager1.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := manager2.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should fail with different secret key")
	}
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	config := testJWTConfig()
	config.TokenDuration = 1 * time.Millisecond
	manager := NewJWTManager(config)

	token, err := manager.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = manager.ValidateToken(token)
	if err == nil {
		t.Error("ValidateToken() should fail for expired token")
	}
	if err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTManager_TokenDuration(t *testing.T) {
	config := testJWTConfig()
	config.TokenDuration = 30 * time.Minute
	manager := NewJWTManager(config)

	expected := int64(30 * 60)
	if got := manager.TokenDuration(); got != expected {
		t.Errorf("TokenDuration() = %v, want %v", got, expected)
	}
}
