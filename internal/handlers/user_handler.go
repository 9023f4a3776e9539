package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/authz"
	"github.com/longkerdandy/burger-backend/internal/dto"
	"github.com/longkerdandy/burger-backend/internal/middleware"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/longkerdandy/burger-backend/internal/repository"
	"github.com/longkerdandy/burger-backend/internal/util"
)

type UserHandler struct {
	users *repository.UserRepo
}

func NewUserHandler(users *repository.UserRepo) *UserHandler {
	return &UserHandler{users: users}
}

// Get returns a user's public profile with email and phone anonymized.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	username := c.Params("username")

	exists, err := h.users.ExistsUsername(c.Context(), username)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "user doesn't exist",
		})
	}

	user, err := h.users.FindByUsername(c.Context(), username)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	user.Phone = util.AnonymizePhone(user.Phone)
	user.Email = util.AnonymizeEmail(user.Email)

	return c.JSON(dto.UserResponseFrom(user))
}

// Update replaces a user's profile fields. Non-admins may only update
// their own profile; the gate runs before any store mutation.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	username := c.Params("username")
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	if !authz.CanMutate(principal.Username, username, principal.Roles) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "users can only edit their own profile",
		})
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	result, err := h.users.UpdateByUsername(c.Context(), &models.User{
		Username: username,
		Email:    req.Email,
		Phone:    req.Phone,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Profile:  req.Profile,
	})
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.UpdateResponse{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
	})
}

// Delete removes a user record. Owner or admin only; irreversible.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}
	if !authz.CanMutate(principal.Username, username, principal.Roles) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "don't have permission to delete this user",
		})
	}

	result, err := h.users.DeleteByUsername(c.Context(), username)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.DeleteResponse{Deleted: result.DeletedCount})
}
