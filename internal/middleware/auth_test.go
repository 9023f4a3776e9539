package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/config"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/longkerdandy/burger-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *services.TokenService) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret: "test-secret-at-least-32-bytes-long!",
		JWTExpiry: time.Hour,
	}
	tokens := services.NewTokenService(cfg)

	app := fiber.New()
	app.Get("/me", JWTProtected(cfg), func(c *fiber.Ctx) error {
		principal, err := CurrentPrincipal(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"username": principal.Username})
	})
	app.Get("/admin", JWTProtected(cfg), AdminRequired(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, tokens
}

func bearerToken(t *testing.T, tokens *services.TokenService, roles ...models.Role) string {
	t.Helper()
	token, _, err := tokens.Generate(&models.User{Username: "alice", Roles: roles})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestJWTProtectedNoToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedValidToken(t *testing.T) {
	app, tokens := newTestApp(t)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens, models.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminRequiredForbidden(t *testing.T) {
	app, tokens := newTestApp(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens, models.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminRequiredAllowed(t *testing.T) {
	app, tokens := newTestApp(t)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", bearerToken(t, tokens, models.RoleUser, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
