package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nishukr/Urban-waste-control/internal/domain"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// RequireRole restricts a route to callers holding the given role. Applied at
// route registration so individual handlers never re-check roles.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewMissingToken()
		}
		if principal.Role != required {
			return apperrors.NewForbidden(forbiddenMessage(required))
		}
		return c.Next()
	}
}

// RequireAuthenticated only demands a valid principal, any role.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewMissingToken()
		}
		return c.Next()
	}
}

func forbiddenMessage(required domain.Role) string {
	switch required {
	case domain.RoleMunicipal:
		return "Access Denied: Municipal employees only"
	case domain.RolePublic:
		return "Access Denied: Public users only"
	default:
		return "Access Denied"
	}
}
