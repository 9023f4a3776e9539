package repository

import (
	"context"
	"time"

	"github.com/longkerdandy/burger-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RatingDelta is the per-dimension adjustment applied to a restaurant's
// rating aggregate when a review is created or removed.
type RatingDelta struct {
	TasteTotal   int64
	TasteCount   int64
	TextureTotal int64
	TextureCount int64
	VirtualTotal int64
	VirtualCount int64
}

// InsertDelta is the adjustment for a newly created review: each
// dimension gains the review's score and one count.
func InsertDelta(review *models.Review) RatingDelta {
	return RatingDelta{
		TasteTotal:   int64(review.Taste),
		TasteCount:   1,
		TextureTotal: int64(review.Texture),
		TextureCount: 1,
		VirtualTotal: int64(review.Virtual),
		VirtualCount: 1,
	}
}

// DeleteDelta is the compensating adjustment for a removed review; it
// exactly negates InsertDelta for the same review.
func DeleteDelta(review *models.Review) RatingDelta {
	return RatingDelta{
		TasteTotal:   -int64(review.Taste),
		TasteCount:   -1,
		TextureTotal: -int64(review.Texture),
		TextureCount: -1,
		VirtualTotal: -int64(review.Virtual),
		VirtualCount: -1,
	}
}

// ratingIncrement builds the atomic update applying a delta: a single
// $inc over all six counters plus a timestamp touch, so the aggregate
// never goes through a read-modify-write window.
func ratingIncrement(d RatingDelta) bson.D {
	return bson.D{
		{Key: "$inc", Value: bson.D{
			{Key: "rating.tasteTotal", Value: d.TasteTotal},
			{Key: "rating.tasteCount", Value: d.TasteCount},
			{Key: "rating.textureTotal", Value: d.TextureTotal},
			{Key: "rating.textureCount", Value: d.TextureCount},
			{Key: "rating.virtualTotal", Value: d.VirtualTotal},
			{Key: "rating.virtualCount", Value: d.VirtualCount},
		}},
		{Key: "$set", Value: bson.D{
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}
}

// RatingAggregator is the only writer of the restaurant rating field.
type RatingAggregator struct {
	restaurants *mongo.Collection
	reviews     *mongo.Collection
}

func NewRatingAggregator(db *mongo.Database) *RatingAggregator {
	return &RatingAggregator{
		restaurants: db.Collection(CollectionRestaurants),
		reviews:     db.Collection(CollectionReviews),
	}
}

// Apply adjusts the rating aggregate of the given restaurant in one
// atomic update.
func (a *RatingAggregator) Apply(ctx context.Context, restaurantID primitive.ObjectID, delta RatingDelta) error {
	_, err := a.restaurants.UpdateOne(ctx,
		bson.M{"_id": restaurantID},
		ratingIncrement(delta))
	return err
}

// Recompute rebuilds the rating aggregate from the full review set of a
// restaurant and overwrites the stored aggregate. It is the out-of-band
// repair for drift left behind by a crash between a review mutation and
// its rating adjustment.
func (a *RatingAggregator) Recompute(ctx context.Context, restaurantID primitive.ObjectID) (models.Rating, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "restaurantId", Value: restaurantID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "tasteTotal", Value: bson.D{{Key: "$sum", Value: "$taste"}}},
			{Key: "tasteCount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "textureTotal", Value: bson.D{{Key: "$sum", Value: "$texture"}}},
			{Key: "textureCount", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "virtualTotal", Value: bson.D{{Key: "$sum", Value: "$virtual"}}},
			{Key: "virtualCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := a.reviews.Aggregate(ctx, pipeline)
	if err != nil {
		return models.Rating{}, err
	}
	var results []models.Rating
	if err := cursor.All(ctx, &results); err != nil {
		return models.Rating{}, err
	}

	// No reviews at all leaves an all-zero aggregate.
	var rating models.Rating
	if len(results) > 0 {
		rating = results[0]
	}

	_, err = a.restaurants.UpdateOne(ctx,
		bson.M{"_id": restaurantID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "rating", Value: rating},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}})
	if err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}
