package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the client shows about the signed-in user. Decoded from
// the token without signature verification: the backend is the validator,
// the client only needs display fields.
type Identity struct {
	Email string
	Role  string
}

var ErrNoToken = errors.New("no token available")

// ParseIdentity decodes email and role claims from a bearer token. Accepts
// the "Bearer " prefix. A malformed token yields an error so the caller can
// treat the stored token as stale.
func ParseIdentity(token string) (Identity, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if raw == "" {
		return Identity{}, ErrNoToken
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return Identity{}, err
	}

	identity := Identity{Role: "USER"}
	for _, key := range []string{"email", "sub", "username"} {
		if value, ok := claims[key].(string); ok && value != "" {
			identity.Email = value
			break
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		identity.Role = role
	}
	if identity.Email == "" {
		return Identity{}, errors.New("token carries no identity claim")
	}
	return identity, nil
}
