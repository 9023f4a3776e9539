package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/longkerdandy/burger-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RestaurantRepo is the store for restaurant documents.
type RestaurantRepo struct {
	restaurants *mongo.Collection
}

func NewRestaurantRepo(db *mongo.Database) *RestaurantRepo {
	return &RestaurantRepo{restaurants: db.Collection(CollectionRestaurants)}
}

// Exists reports whether a restaurant with the given id exists.
func (r *RestaurantRepo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.restaurants.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

// Insert stores a new restaurant with a generated id and a server-side
// timestamp. The rating aggregate starts at zero.
func (r *RestaurantRepo) Insert(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	restaurant.ID = primitive.NewObjectID()
	restaurant.UpdatedAt = time.Now().UTC()
	if _, err := r.restaurants.InsertOne(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// FindByID loads a restaurant; mongo.ErrNoDocuments when absent.
func (r *RestaurantRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.restaurants.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindRandom samples one restaurant uniformly at random;
// mongo.ErrNoDocuments when the collection is empty.
func (r *RestaurantRepo) FindRandom(ctx context.Context) (*models.Restaurant, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
	cursor, err := r.restaurants.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var results []models.Restaurant
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return &results[0], nil
}

// geoNearPipeline builds the spherical nearest-neighbor aggregation:
// distance is computed in kilometers, the payload is projected down to
// the list-view fields, then skip/limit paginate. $geoNear sorts by
// ascending distance, which callers rely on.
func geoNearPipeline(point models.GeoPoint, maxDistanceKm float64, skip, limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: point},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: maxDistanceKm * 1000},
			{Key: "distanceMultiplier", Value: 0.001},
			{Key: "spherical", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "logo", Value: 1},
			{Key: "rating", Value: 1},
			{Key: "distance", Value: 1},
		}}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: limit}},
	}
}

// SearchNear finds restaurants within maxDistanceKm of point, ordered
// by ascending distance. Coordinate range checks are the caller's job.
func (r *RestaurantRepo) SearchNear(ctx context.Context, point models.GeoPoint, maxDistanceKm float64, skip, limit int64) ([]models.Restaurant, error) {
	cursor, err := r.restaurants.Aggregate(ctx, geoNearPipeline(point, maxDistanceKm, skip, limit))
	if err != nil {
		return nil, err
	}
	var results []models.Restaurant
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Update replaces the mutable restaurant fields. The rating aggregate
// is deliberately not part of the update document; only the rating
// aggregator writes it.
func (r *RestaurantRepo) Update(ctx context.Context, restaurant *models.Restaurant) (*mongo.UpdateResult, error) {
	return r.restaurants.UpdateOne(ctx,
		bson.M{"_id": restaurant.ID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: restaurant.Name},
			{Key: "logo", Value: restaurant.Logo},
			{Key: "location", Value: restaurant.Location},
			{Key: "address", Value: restaurant.Address},
			{Key: "images", Value: restaurant.Images},
			{Key: "opening", Value: restaurant.Opening},
			{Key: "menu", Value: restaurant.Menu},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}}})
}

// notContainsFilter matches documents whose name does not contain the
// keyword, case-insensitively.
func notContainsFilter(keyword string) bson.M {
	return bson.M{"name": bson.M{"$not": primitive.Regex{
		Pattern: regexp.QuoteMeta(keyword),
		Options: "i",
	}}}
}

// DeleteNameNotContains bulk-removes restaurants whose name does not
// contain the keyword.
func (r *RestaurantRepo) DeleteNameNotContains(ctx context.Context, keyword string) (*mongo.DeleteResult, error) {
	return r.restaurants.DeleteMany(ctx, notContainsFilter(keyword))
}

// DeleteByID removes a restaurant; zero deleted when absent.
func (r *RestaurantRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.restaurants.DeleteOne(ctx, bson.M{"_id": id})
}
