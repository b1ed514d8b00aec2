package auth

import (
	"context"

	"github.com/crewpay/crewpay-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// Principal is the authenticated caller as asserted by the identity provider.
// The core trusts these claims as-is (the token signature is checked upstream
// by the verifier middleware).
type Principal struct {
	UserID string
	Role   user.Role
}

// PrincipalFromContext extracts the caller from the jwtauth claims placed in
// the request context by the verifier middleware.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Principal{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(roleStr) {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: userID, Role: user.Role(roleStr)}, nil
}
