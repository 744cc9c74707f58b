package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// DecodeIdentity extracts the user-descriptive claims from an access
// token payload. The signature is deliberately not verified: the
// result is a claims hint for display, not an authorization decision.
//
// The backend puts the user's email in the registered `sub` claim; an
// explicit `email` claim, when present, takes precedence.
func DecodeIdentity(token string) (models.UserIdentity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.UserIdentity{}, fmt.Errorf("parsing access token: %w", err)
	}

	var identity models.UserIdentity
	if v, ok := claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		identity.Role = v
	}
	if v, ok := claims["sub"].(string); ok {
		identity.Subject = v
		if identity.Email == "" {
			identity.Email = v
		}
	}
	return identity, nil
}
