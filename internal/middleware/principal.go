package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/longkerdandy/burger-backend/internal/services"
)

// CurrentPrincipal extracts the authenticated principal stored by the
// JWT middleware. Only callable behind JWTProtected.
func CurrentPrincipal(c *fiber.Ctx) (*services.Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, services.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, services.ErrInvalidToken
	}
	return services.PrincipalFromClaims(claims)
}
