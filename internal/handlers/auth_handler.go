package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/dto"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/longkerdandy/burger-backend/internal/repository"
	"github.com/longkerdandy/burger-backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthHandler struct {
	users  *repository.UserRepo
	tokens *services.TokenService
	hasher *services.BcryptHasher
}

func NewAuthHandler(users *repository.UserRepo, tokens *services.TokenService, hasher *services.BcryptHasher) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, hasher: hasher}
}

// Register creates a user with the USER role and returns a token, same
// shape as Login. Uniqueness is checked up front so a duplicate yields
// a clean conflict; the unique indexes still catch races.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Username == "" || req.Email == "" || req.Phone == "" || len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "username, email and phone are required and password must be at least 8 characters",
		})
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Avatar:   req.Avatar,
		Nickname: req.Nickname,
		Profile:  req.Profile,
		Roles:    []models.Role{models.RoleUser},
	}

	exists, err := h.users.Exists(c.Context(), user)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if exists {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "user already exists",
		})
	}

	if _, err := h.users.Insert(c.Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "user already exists",
			})
		}
		return fiber.ErrInternalServerError
	}

	return h.loginResponse(c, fiber.StatusCreated, user)
}

// Login verifies the credential and returns a token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.users.FindByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "invalid username or password",
			})
		}
		return fiber.ErrInternalServerError
	}
	if !h.hasher.Compare(user.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid username or password",
		})
	}

	return h.loginResponse(c, fiber.StatusOK, user)
}

func (h *AuthHandler) loginResponse(c *fiber.Ctx, status int, user *models.User) error {
	token, expiresAt, err := h.tokens.Generate(user)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}

	return c.Status(status).JSON(dto.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		Username:             user.Username,
		Roles:                roles,
	})
}
