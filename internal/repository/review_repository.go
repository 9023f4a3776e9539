package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/longkerdandy/burger-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewRepo is the store for review documents and their embedded
// comments. Review creation and deletion drive the rating aggregator;
// the two steps are not atomic as a unit, so a crash in between leaves
// aggregate drift that Recompute repairs.
type ReviewRepo struct {
	reviews    *mongo.Collection
	aggregator *RatingAggregator
}

func NewReviewRepo(db *mongo.Database, aggregator *RatingAggregator) *ReviewRepo {
	return &ReviewRepo{
		reviews:    db.Collection(CollectionReviews),
		aggregator: aggregator,
	}
}

// Exists reports whether a review with the given id exists.
func (r *ReviewRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.reviews.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

// IsAuthor reports whether the review was written by username.
func (r *ReviewRepo) IsAuthor(ctx context.Context, id primitive.ObjectID, username string) (bool, error) {
	filter := bson.M{"_id": id, "author.username": username}
	n, err := r.reviews.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

// Insert stores a new review and then increments the referenced
// restaurant's rating aggregate. Insert-first ordering biases drift
// toward an overcounting aggregate rather than a silently lost review;
// a failed increment is logged for out-of-band recomputation instead of
// rolling the review back.
func (r *ReviewRepo) Insert(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.ID = primitive.NewObjectID()
	review.UpdatedAt = time.Now().UTC()
	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		return nil, err
	}

	if err := r.aggregator.Apply(ctx, review.RestaurantID, InsertDelta(review)); err != nil {
		slog.Error("rating increment failed, aggregate needs recompute",
			"restaurant_id", review.RestaurantID.Hex(),
			"review_id", review.ID.Hex(),
			"error", err)
	}
	return review, nil
}

// findByIDPipeline matches one review and derives commentsCount from
// the length of the comment sequence (0 when absent). The count is
// computed here, never stored.
func findByIDPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "commentsCount", Value: bson.D{
				{Key: "$size", Value: bson.D{
					{Key: "$ifNull", Value: bson.A{"$comments", bson.A{}}},
				}},
			}},
		}}},
	}
}

// FindByID loads a review with its derived commentsCount;
// mongo.ErrNoDocuments when absent.
func (r *ReviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	cursor, err := r.reviews.Aggregate(ctx, findByIDPipeline(id))
	if err != nil {
		return nil, err
	}
	var results []models.Review
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &results[0], nil
}

// listProjection drops the embedded comments and the restaurantId from
// list views to keep payloads small.
func listProjection() bson.M {
	return bson.M{"restaurantId": 0, "comments": 0, "updatedAt": 0}
}

// FindByRestaurant lists reviews for a restaurant ordered by id, which
// is time-ordered, so this is creation order. Ascending when ascending
// is true, else descending.
func (r *ReviewRepo) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID, ascending bool, skip, limit int64) ([]models.Review, error) {
	direction := 1
	if !ascending {
		direction = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: direction}}).
		SetSkip(skip).
		SetLimit(limit).
		SetProjection(listProjection())

	cursor, err := r.reviews.Find(ctx, bson.M{"restaurantId": restaurantID}, opts)
	if err != nil {
		return nil, err
	}
	var results []models.Review
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateContent replaces only the review's content and images. Scores
// and author are immutable after creation.
func (r *ReviewRepo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string, images []string) (*mongo.UpdateResult, error) {
	return r.reviews.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: content},
			{Key: "images", Value: images},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}})
}

// AddComment atomically appends a comment to the review's sequence and
// touches the review's timestamp. The creation time is set server-side.
// A missing review id yields zero matched, not an error.
func (r *ReviewRepo) AddComment(ctx context.Context, id primitive.ObjectID, comment *models.Comment) (*mongo.UpdateResult, error) {
	comment.CreatedAt = time.Now().UTC()
	return r.reviews.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "comments", Value: comment}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
		})
}

// DeleteByID removes a review. The current scores are read first to
// build the compensating rating decrement; when the review is absent
// the decrement is skipped and the delete still runs (idempotent
// no-op). A found review whose decrement fails is logged for repair;
// the delete proceeds regardless.
func (r *ReviewRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	var review models.Review
	err := r.reviews.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"comments": 0})).Decode(&review)
	switch {
	case err == nil:
		if aggErr := r.aggregator.Apply(ctx, review.RestaurantID, DeleteDelta(&review)); aggErr != nil {
			slog.Error("rating decrement failed, aggregate needs recompute",
				"restaurant_id", review.RestaurantID.Hex(),
				"review_id", id.Hex(),
				"error", aggErr)
		}
	case errors.Is(err, mongo.ErrNoDocuments):
		// Nothing to compensate; still attempt the delete below.
	default:
		return nil, err
	}

	return r.reviews.DeleteOne(ctx, bson.M{"_id": id})
}
