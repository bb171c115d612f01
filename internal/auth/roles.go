package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/JTSTBP/ATS-sub003/internal/domain"
)

// RequireDesignation ensures the caller holds one of the allowed designations.
func RequireDesignation(allowed ...domain.Designation) fiber.Handler {
	allowedSet := make(map[domain.Designation]struct{}, len(allowed))
	for _, designation := range allowed {
		allowedSet[designation] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		designation, valid := domain.ParseDesignation(string(principal.User.Designation))
		if !valid {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		if _, exists := allowedSet[designation]; !exists {
			return fiber.NewError(http.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a caller is signed in.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}
