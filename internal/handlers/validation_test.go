package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests cover the request validation paths, which reject before
// any store call is made.

func TestSearchRejectsBadCoordinates(t *testing.T) {
	app := fiber.New()
	h := &RestaurantHandler{}
	app.Get("/restaurants/search", h.Search)

	for _, query := range []string{
		"longitude=200&latitude=10&maxDistance=5",
		"longitude=10&latitude=95&maxDistance=5",
		"longitude=10&latitude=10&maxDistance=0",
		"longitude=10&latitude=10&maxDistance=-1",
		"longitude=10&latitude=10&maxDistance=5&skip=-1",
		"longitude=10&latitude=10&maxDistance=5&limit=0",
		"longitude=10&latitude=10&maxDistance=5&limit=101",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/restaurants/search?"+query, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, query)
	}
}

func TestCreateRestaurantRejectsMissingName(t *testing.T) {
	app := fiber.New()
	h := &RestaurantHandler{}
	app.Post("/restaurants", h.Create)

	req := httptest.NewRequest("POST", "/restaurants",
		strings.NewReader(`{"longitude": 116.4, "latitude": 39.9}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetRestaurantRejectsBadID(t *testing.T) {
	app := fiber.New()
	h := &RestaurantHandler{}
	app.Get("/restaurants/:id", h.Get)

	resp, err := app.Test(httptest.NewRequest("GET", "/restaurants/not-hex", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateReviewRejectsBadScores(t *testing.T) {
	app := fiber.New()
	h := &ReviewHandler{}
	app.Post("/reviews", h.Create)

	for _, body := range []string{
		`{"restaurant_id": "6511aa0000000000000000aa", "taste": 6, "texture": 3, "virtual": 3}`,
		`{"restaurant_id": "6511aa0000000000000000aa", "taste": 3, "texture": -1, "virtual": 3}`,
		`{"restaurant_id": "not-hex", "taste": 3, "texture": 3, "virtual": 3}`,
	} {
		req := httptest.NewRequest("POST", "/reviews", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestReviewSearchRejectsBadDirection(t *testing.T) {
	app := fiber.New()
	h := &ReviewHandler{}
	app.Get("/reviews", h.Search)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/reviews?restaurantId=6511aa0000000000000000aa&direction=SIDEWAYS", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddCommentRejectsEmptyContent(t *testing.T) {
	app := fiber.New()
	h := &ReviewHandler{}
	app.Post("/reviews/:id/comments", h.AddComment)

	req := httptest.NewRequest("POST", "/reviews/6511aa0000000000000000aa/comments",
		strings.NewReader(`{"content": ""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := fiber.New()
	h := &AuthHandler{}
	app.Post("/auth/register", h.Register)

	req := httptest.NewRequest("POST", "/auth/register",
		strings.NewReader(`{"username": "alice", "email": "a@b.com", "phone": "18618618888", "password": "short"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestImageGrantRejectsBadExtension(t *testing.T) {
	app := fiber.New()
	h := &ImageHandler{}
	app.Get("/images/grant", h.Grant)

	resp, err := app.Test(httptest.NewRequest("GET", "/images/grant?extension=exe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
