package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/pkg/util"
)

const userIDKey = "auth_user_id"

// Gate authenticates bearer tokens on protected routes.
type Gate struct {
	tokens *TokenManager
}

// NewGate constructs the gate around a token manager.
func NewGate(tokens *TokenManager) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate inspects an Authorization header value and returns the
// authenticated user id, or a typed rejection:
//
//	AUT_01  missing header, wrong scheme, or empty token
//	AUT_04  token expired
//	AUT_03  signature invalid or token malformed
//	AUT_02  token cryptographically valid but claims carry no positive id
//
// Pure function of the header and the signing secret; no I/O.
func (g *Gate) Authenticate(authHeader string) (int64, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return 0, util.New(util.CodeAuthMissingBearer,
			"Authentication failed. Log in, then try again",
			"No authentication token of type Bearer was provided")
	}

	claims, err := g.tokens.Verify(parts[1])
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return 0, util.New(util.CodeAuthTokenExpired,
				"Authentication failed. Token has expired",
				"Log in again to obtain a fresh token")
		}
		return 0, util.New(util.CodeAuthInvalidToken,
			"Authentication failed. Token is not valid",
			"The authentication token could not be verified")
	}

	if claims.UserID <= 0 {
		return 0, util.New(util.CodeAuthClaimShape,
			"Authentication failed. Try logging in once again",
			"Decoded Payload from authentication token did not match the expected.")
	}
	return claims.UserID, nil
}

// Handle enforces authentication for protected routes and stores the caller
// id for downstream handlers.
func (g *Gate) Handle(c *fiber.Ctx) error {
	userID, err := g.Authenticate(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	c.Locals(userIDKey, userID)
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user id.
func UserIDFromContext(c *fiber.Ctx) (int64, bool) {
	val := c.Locals(userIDKey)
	if val == nil {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok
}
