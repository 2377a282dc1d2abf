package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"infinity8/config"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is the subset of identity-provider claims this service reads.
// Tokens are minted by the external identity provider; this service only
// verifies them.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// HashToken computes a SHA-256 hash of the token string. Used as a cache key
// so raw tokens never land in Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates an access token against the identity
// provider's shared HS256 secret and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
}

// ExtractClaims validates a token string and pulls out the claims the
// service cares about. The role claim is optional; absent means "user".
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
		return nil, errors.New("token expired")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	out := &TokenClaims{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		out.Role = role
	} else {
		out.Role = "user"
	}
	return out, nil
}
