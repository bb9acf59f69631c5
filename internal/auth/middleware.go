package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller for the current request.
type Principal struct {
	UserID string
	Role   domain.Role
}

// Middleware validates session tokens and attaches the caller's identity
// to the request context.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The Authorization
// header carries the raw token, without a Bearer prefix.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	claims, err := m.tokens.Verify(c.Get("Authorization"))
	if err != nil {
		return err
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID, Role: claims.Role})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
