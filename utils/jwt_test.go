package utils

import (
	"testing"
	"time"

	"infinity8/config"

	"github.com/golang-jwt/jwt"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestExtractClaims(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret

	tokenString := signToken(t, jwt.MapClaims{
		"sub":   "auth0|abc123",
		"email": "member@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	claims, err := ExtractClaims(tokenString)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if claims.Subject != "auth0|abc123" {
		t.Errorf("subject = %s", claims.Subject)
	}
	if claims.Email != "member@example.com" {
		t.Errorf("email = %s", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %s", claims.Role)
	}
}

func TestExtractClaimsDefaultsRoleToUser(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "auth0|abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	claims, err := ExtractClaims(tokenString)
	if err != nil {
		t.Fatalf("ExtractClaims failed: %v", err)
	}
	if claims.Role != "user" {
		t.Errorf("role = %s, want user", claims.Role)
	}
}

func TestExtractClaimsRejectsExpiredToken(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "auth0|abc123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	if _, err := ExtractClaims(tokenString); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}

func TestExtractClaimsRejectsWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret

	tokenString := signToken(t, jwt.MapClaims{
		"sub": "auth0|abc123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, "some-other-secret")

	if _, err := ExtractClaims(tokenString); err == nil {
		t.Fatal("expected an error for a token signed with the wrong secret")
	}
}

func TestExtractClaimsRequiresSubject(t *testing.T) {
	config.AppConfig.JWTSecret = testSecret

	tokenString := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	if _, err := ExtractClaims(tokenString); err == nil {
		t.Fatal("expected an error for a token without sub")
	}
}

func TestHashTokenIsStableAndOpaque(t *testing.T) {
	a := HashToken("token-a")
	if a != HashToken("token-a") {
		t.Fatal("hash must be deterministic")
	}
	if a == HashToken("token-b") {
		t.Fatal("distinct tokens must hash differently")
	}
	if a == "token-a" || len(a) != 64 {
		t.Fatalf("unexpected hash %q", a)
	}
}
