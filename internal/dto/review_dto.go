package dto

import (
	"github.com/longkerdandy/burger-backend/internal/models"
)

type ReviewRequest struct {
	RestaurantID string   `json:"restaurant_id"`
	Taste        int      `json:"taste"`
	Texture      int      `json:"texture"`
	Virtual      int      `json:"virtual"`
	Content      string   `json:"content"`
	Images       []string `json:"images"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type ReviewResponse struct {
	ID            string           `json:"id"`
	RestaurantID  string           `json:"restaurant_id,omitempty"`
	Author        models.Author    `json:"author"`
	Taste         int              `json:"taste"`
	Texture       int              `json:"texture"`
	Virtual       int              `json:"virtual"`
	Content       string           `json:"content,omitempty"`
	Images        []string         `json:"images,omitempty"`
	Comments      []models.Comment `json:"comments,omitempty"`
	CommentsCount int64            `json:"comments_count"`
}

func ReviewResponseFrom(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:            review.ID.Hex(),
		Author:        review.Author,
		Taste:         review.Taste,
		Texture:       review.Texture,
		Virtual:       review.Virtual,
		Content:       review.Content,
		Images:        review.Images,
		Comments:      review.Comments,
		CommentsCount: review.CommentsCount,
	}
	// Zero when the store projection excluded the field (list views).
	if !review.RestaurantID.IsZero() {
		resp.RestaurantID = review.RestaurantID.Hex()
	}
	return resp
}

func ReviewListFrom(reviews []models.Review) []*ReviewResponse {
	results := make([]*ReviewResponse, len(reviews))
	for i := range reviews {
		results[i] = ReviewResponseFrom(&reviews[i])
	}
	return results
}
