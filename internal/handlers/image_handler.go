package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/dto"
	"github.com/longkerdandy/burger-backend/internal/services"
)

type ImageHandler struct {
	images *services.ImageService
}

func NewImageHandler(images *services.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// Grant hands out a short-lived signed upload grant. Clients upload
// directly to the image store and then reference the blob name in
// restaurant or review payloads.
func (h *ImageHandler) Grant(c *fiber.Ctx) error {
	extension := c.Query("extension", "jpg")
	if !services.ValidImageExtension(extension) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "extension must be one of jpg, jpeg, png, gif, webp",
		})
	}

	return c.JSON(h.images.NewUploadGrant(extension))
}
