package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/longkerdandy/burger-backend/internal/dto"
	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/longkerdandy/burger-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	searchDefaultLimit = 20
	searchMaxLimit     = 100
)

type RestaurantHandler struct {
	restaurants *repository.RestaurantRepo
	aggregator  *repository.RatingAggregator
}

func NewRestaurantHandler(restaurants *repository.RestaurantRepo, aggregator *repository.RatingAggregator) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, aggregator: aggregator}
}

// Create inserts a restaurant with a zero rating aggregate. The rating
// is owned by the review pipeline and is never taken from the request.
func (h *RestaurantHandler) Create(c *fiber.Ctx) error {
	var req dto.RestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "name is required",
		})
	}
	if !validCoordinates(req.Longitude, req.Latitude) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "longitude must be in [-180, 180] and latitude in [-90, 90]",
		})
	}

	restaurant := req.ToRestaurant()
	if _, err := h.restaurants.Insert(c.Context(), restaurant); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RestaurantResponseFrom(restaurant))
}

// Get returns a restaurant by id.
func (h *RestaurantHandler) Get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid restaurant id",
		})
	}

	restaurant, err := h.restaurants.FindByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "restaurant doesn't exist",
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.RestaurantResponseFrom(restaurant))
}

// GetRandom returns an arbitrary restaurant, handy for demos and smoke
// checks against an empty-ish database.
func (h *RestaurantHandler) GetRandom(c *fiber.Ctx) error {
	restaurant, err := h.restaurants.FindRandom(c.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "no restaurants exist",
			})
		}
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.RestaurantResponseFrom(restaurant))
}

// Search runs a nearest-first geospatial query. Results are ordered by
// distance and paginated with skip/limit.
func (h *RestaurantHandler) Search(c *fiber.Ctx) error {
	longitude := c.QueryFloat("longitude")
	latitude := c.QueryFloat("latitude")
	maxDistance := c.QueryFloat("maxDistance")
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", searchDefaultLimit)

	if !validCoordinates(longitude, latitude) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "longitude must be in [-180, 180] and latitude in [-90, 90]",
		})
	}
	if maxDistance <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "maxDistance must be a positive number of kilometers",
		})
	}
	if skip < 0 || limit < 1 || limit > searchMaxLimit {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "skip must be >= 0 and limit between 1 and 100",
		})
	}

	point := models.NewGeoPoint(longitude, latitude)
	results, err := h.restaurants.SearchNear(c.Context(), point, maxDistance, int64(skip), int64(limit))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.SearchResultsFrom(results))
}

// Update replaces a restaurant's descriptive fields. The rating
// aggregate is untouched.
func (h *RestaurantHandler) Update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid restaurant id",
		})
	}

	var req dto.RestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if !validCoordinates(req.Longitude, req.Latitude) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "longitude must be in [-180, 180] and latitude in [-90, 90]",
		})
	}

	restaurant := req.ToRestaurant()
	restaurant.ID = id
	result, err := h.restaurants.Update(c.Context(), restaurant)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.UpdateResponse{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
	})
}

// Delete removes a restaurant by id.
func (h *RestaurantHandler) Delete(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid restaurant id",
		})
	}

	result, err := h.restaurants.DeleteByID(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.DeleteResponse{Deleted: result.DeletedCount})
}

// Purge deletes every restaurant whose name does not contain the
// keyword, "burger" by default. Used to sweep junk data out of shared
// environments.
func (h *RestaurantHandler) Purge(c *fiber.Ctx) error {
	keyword := c.Query("keyword", "burger")

	result, err := h.restaurants.DeleteNameNotContains(c.Context(), keyword)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(dto.DeleteResponse{Deleted: result.DeletedCount})
}

// RecomputeRating rebuilds the rating aggregate from the stored
// reviews. Repair operation for aggregates that drifted after a
// partial failure.
func (h *RestaurantHandler) RecomputeRating(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid restaurant id",
		})
	}

	exists, err := h.restaurants.Exists(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "restaurant doesn't exist",
		})
	}

	rating, err := h.aggregator.Recompute(c.Context(), id)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(rating)
}

func validCoordinates(longitude, latitude float64) bool {
	return longitude >= -180 && longitude <= 180 && latitude >= -90 && latitude <= 90
}
