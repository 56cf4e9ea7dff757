package services

import (
	"strings"

	"hotel-client/errors"

	"github.com/dgrijalva/jwt-go"
	json "github.com/goccy/go-json"
)

// TokenClaims are the claims the client reads from a backend token. The
// signature is not checked here; the backend verifies every request.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt int64
}

// ParseTokenClaims decodes the payload segment of a JWT
func ParseTokenClaims(tokenString string) (*TokenClaims, error) {
	parts := strings.Split(strings.TrimPrefix(tokenString, "Bearer "), ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot decode token payload", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "cannot parse token claims", err)
	}

	claims := &TokenClaims{}
	if sub, ok := claimsMap["sub"].(string); ok {
		claims.Subject = sub
	}
	if role, ok := claimsMap["role"].(string); ok {
		claims.Role = role
	}
	if exp, ok := claimsMap["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
	}
	return claims, nil
}
