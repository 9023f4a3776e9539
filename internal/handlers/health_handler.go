package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/database"
	"github.com/longkerdandy/burger-backend/internal/dto"
)

// Health reports process and database liveness.
func Health(c *fiber.Ctx) error {
	status := fiber.StatusOK
	overall := "ok"
	db := "up"
	if err := database.Ping(); err != nil {
		status = fiber.StatusServiceUnavailable
		overall = "degraded"
		db = "down"
	}

	return c.Status(status).JSON(dto.HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		DB:        db,
	})
}
