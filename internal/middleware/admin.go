package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/authz"
	"github.com/longkerdandy/burger-backend/internal/dto"
)

// AdminRequired rejects requests whose principal lacks the elevated
// role. Must sit behind JWTProtected.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := CurrentPrincipal(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if !authz.HasElevatedRole(principal.Roles) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
