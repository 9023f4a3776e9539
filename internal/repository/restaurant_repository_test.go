package repository

import (
	"testing"

	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGeoNearPipeline(t *testing.T) {
	point := models.NewGeoPoint(116.4, 39.9)
	pipeline := geoNearPipeline(point, 2, 10, 20)

	require.Len(t, pipeline, 4)
	require.Equal(t, "$geoNear", pipeline[0][0].Key)

	geoNear, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	fields := make(map[string]any, len(geoNear))
	for _, e := range geoNear {
		fields[e.Key] = e.Value
	}

	// Kilometers in, meters to the server, kilometers back out.
	assert.Equal(t, float64(2000), fields["maxDistance"])
	assert.Equal(t, 0.001, fields["distanceMultiplier"])
	assert.Equal(t, true, fields["spherical"])
	assert.Equal(t, "distance", fields["distanceField"])
	assert.Equal(t, point, fields["near"])
}

func TestGeoNearPipelineProjection(t *testing.T) {
	pipeline := geoNearPipeline(models.NewGeoPoint(0, 0), 1, 0, 5)

	require.Equal(t, "$project", pipeline[1][0].Key)
	project, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)

	kept := make([]string, 0, len(project))
	for _, e := range project {
		kept = append(kept, e.Key)
	}
	assert.ElementsMatch(t, []string{"name", "logo", "rating", "distance"}, kept)

	assert.Equal(t, "$skip", pipeline[2][0].Key)
	assert.Equal(t, int64(0), pipeline[2][0].Value)
	assert.Equal(t, "$limit", pipeline[3][0].Key)
	assert.Equal(t, int64(5), pipeline[3][0].Value)
}

func TestGeoPointOrdering(t *testing.T) {
	p := models.NewGeoPoint(116.4, 39.9)

	// GeoJSON convention: longitude first.
	assert.Equal(t, []float64{116.4, 39.9}, p.Coordinates)
	assert.Equal(t, 116.4, p.Longitude())
	assert.Equal(t, 39.9, p.Latitude())
	assert.Equal(t, "Point", p.Type)
}

func TestNotContainsFilter(t *testing.T) {
	filter := notContainsFilter("burger")

	name, ok := filter["name"].(bson.M)
	require.True(t, ok)
	re, ok := name["$not"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "burger", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestNotContainsFilterQuotesMeta(t *testing.T) {
	filter := notContainsFilter("a.b")

	re := filter["name"].(bson.M)["$not"].(primitive.Regex)
	assert.Equal(t, `a\.b`, re.Pattern)
}
