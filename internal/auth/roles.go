package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/locker-service/internal/domain"
	apperrors "github.com/spec-kit/locker-service/pkg/util"
)

// RequireRole ensures the authenticated caller holds the given role.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthenticated("no token provided")
		}
		if principal.Role != role {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a caller identity is attached.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthenticated("no token provided")
		}
		return c.Next()
	}
}
