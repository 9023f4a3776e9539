package dto

import (
	"time"

	"github.com/longkerdandy/burger-backend/internal/models"
)

type RestaurantRequest struct {
	Name      string            `json:"name"`
	Logo      string            `json:"logo"`
	Longitude float64           `json:"longitude"`
	Latitude  float64           `json:"latitude"`
	Address   string            `json:"address"`
	Images    []string          `json:"images"`
	Opening   models.Opening    `json:"opening"`
	Menu      []models.MenuItem `json:"menu"`
}

// ToRestaurant maps the request onto a restaurant entity. The rating
// aggregate is never taken from a request.
func (r *RestaurantRequest) ToRestaurant() *models.Restaurant {
	return &models.Restaurant{
		Name:     r.Name,
		Logo:     r.Logo,
		Location: models.NewGeoPoint(r.Longitude, r.Latitude),
		Address:  r.Address,
		Images:   r.Images,
		Opening:  r.Opening,
		Menu:     r.Menu,
	}
}

type RestaurantResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Logo      string            `json:"logo,omitempty"`
	Location  *models.GeoPoint  `json:"location,omitempty"`
	Address   string            `json:"address,omitempty"`
	Images    []string          `json:"images,omitempty"`
	Opening   *models.Opening   `json:"opening,omitempty"`
	Menu      []models.MenuItem `json:"menu,omitempty"`
	Rating    models.Rating     `json:"rating"`
	Distance  *float64          `json:"distance,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty"`
}

func RestaurantResponseFrom(restaurant *models.Restaurant) *RestaurantResponse {
	resp := &RestaurantResponse{
		ID:       restaurant.ID.Hex(),
		Name:     restaurant.Name,
		Logo:     restaurant.Logo,
		Address:  restaurant.Address,
		Images:   restaurant.Images,
		Menu:     restaurant.Menu,
		Rating:   restaurant.Rating,
		Distance: restaurant.Distance,
	}
	if len(restaurant.Location.Coordinates) == 2 {
		loc := restaurant.Location
		resp.Location = &loc
	}
	if restaurant.Opening != (models.Opening{}) {
		opening := restaurant.Opening
		resp.Opening = &opening
	}
	if !restaurant.UpdatedAt.IsZero() {
		updatedAt := restaurant.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// SearchResultsFrom maps a geo search result list, preserving order.
func SearchResultsFrom(restaurants []models.Restaurant) []*RestaurantResponse {
	results := make([]*RestaurantResponse, len(restaurants))
	for i := range restaurants {
		results[i] = RestaurantResponseFrom(&restaurants[i])
	}
	return results
}
