package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/authz"
	"github.com/longkerdandy/burger-backend/internal/dto"
	"github.com/longkerdandy/burger-backend/internal/middleware"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/longkerdandy/burger-backend/internal/repository"
	"github.com/longkerdandy/burger-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewHandler struct {
	reviews     *repository.ReviewRepo
	restaurants *repository.RestaurantRepo
	users       *repository.UserRepo
	publisher   *services.CommentPublisher
}

func NewReviewHandler(reviews *repository.ReviewRepo, restaurants *repository.RestaurantRepo, users *repository.UserRepo, publisher *services.CommentPublisher) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, restaurants: restaurants, users: users, publisher: publisher}
}

// Create inserts a review and bumps the restaurant's rating aggregate.
// The author snapshot is taken from the store, not the token, so stale
// tokens can't write outdated profiles into reviews.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if !validScore(req.Taste) || !validScore(req.Texture) || !validScore(req.Virtual) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "scores must be between 0 and 5",
		})
	}

	restaurantID, err := primitive.ObjectIDFromHex(req.RestaurantID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid restaurant id",
		})
	}

	author, err := h.currentAuthor(c)
	if err != nil {
		return err
	}

	exists, err := h.restaurants.Exists(c.Context(), restaurantID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "restaurant doesn't exist",
		})
	}

	review := &models.Review{
		RestaurantID: restaurantID,
		Author:       *author,
		Taste:        req.Taste,
		Texture:      req.Texture,
		Virtual:      req.Virtual,
		Content:      req.Content,
		Images:       req.Images,
	}
	if _, err := h.reviews.Insert(c.Context(), review); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ReviewResponseFrom(review))
}

// Get returns a review with its comments and derived comment count.
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid review id",
		})
	}

	review, err := h.reviews.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "review doesn't exist",
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.ReviewResponseFrom(review))
}

// Search lists a restaurant's reviews in insertion order, ascending or
// descending, without the comment bodies.
func (h *ReviewHandler) Search(c *fiber.Ctx) error {
	restaurantID, err := primitive.ObjectIDFromHex(c.Query("restaurantId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid restaurant id",
		})
	}

	direction := c.Query("direction", "DESC")
	if direction != "ASC" && direction != "DESC" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "direction must be ASC or DESC",
		})
	}
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", searchDefaultLimit)
	if skip < 0 || limit < 1 || limit > searchMaxLimit {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "skip must be >= 0 and limit between 1 and 100",
		})
	}

	reviews, err := h.reviews.FindByRestaurant(c.Context(), restaurantID, direction == "ASC", int64(skip), int64(limit))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.ReviewListFrom(reviews))
}

// Update replaces a review's content and images. Scores and the author
// snapshot are immutable once written. Author or admin only.
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid review id",
		})
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.requireAuthorOrAdmin(c, id); err != nil {
		return err
	}

	result, err := h.reviews.UpdateContent(c.Context(), id, req.Content, req.Images)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.UpdateResponse{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
	})
}

// Delete removes a review and unwinds its contribution to the
// restaurant's rating aggregate. Author or admin only.
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid review id",
		})
	}

	if err := h.requireAuthorOrAdmin(c, id); err != nil {
		return err
	}

	result, err := h.reviews.DeleteByID(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.DeleteResponse{Deleted: result.DeletedCount})
}

// AddComment appends an immutable comment to a review. Any
// authenticated user may comment; the event is published best effort.
func (h *ReviewHandler) AddComment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid review id",
		})
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "content is required",
		})
	}

	author, err := h.currentAuthor(c)
	if err != nil {
		return err
	}

	comment := &models.Comment{Author: *author, Content: req.Content}
	result, err := h.reviews.AddComment(c.Context(), id, comment)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "review doesn't exist",
		})
	}

	if err := h.publisher.Publish(c.Context(), id, comment); err != nil {
		slog.Warn("comment event publish failed", "review_id", id.Hex(), "error", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UpdateResponse{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
	})
}

// currentAuthor loads the principal's user record and snapshots it.
func (h *ReviewHandler) currentAuthor(c *fiber.Ctx) (*models.Author, error) {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return nil, fiber.ErrUnauthorized
	}

	user, err := h.users.FindByUsername(c.Context(), principal.Username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "user doesn't exist")
		}
		return nil, fiber.ErrInternalServerError
	}

	author := user.Snapshot()
	return &author, nil
}

// requireAuthorOrAdmin gates review mutations. Missing reviews surface
// as 404 before the permission check so probing ids is harmless.
func (h *ReviewHandler) requireAuthorOrAdmin(c *fiber.Ctx, id primitive.ObjectID) error {
	principal, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	exists, err := h.reviews.Exists(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "review doesn't exist",
		})
	}

	if authz.HasElevatedRole(principal.Roles) {
		return nil
	}
	isAuthor, err := h.reviews.IsAuthor(c.Context(), id, principal.Username)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !isAuthor {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "users can only edit their own review",
		})
	}
	return nil
}

func validScore(score int) bool {
	return score >= 0 && score <= 5
}
