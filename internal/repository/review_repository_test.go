package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFindByIDPipelineDerivesCommentsCount(t *testing.T) {
	id := primitive.NewObjectID()
	pipeline := findByIDPipeline(id)

	require.Len(t, pipeline, 2)
	assert.Equal(t, "$match", pipeline[0][0].Key)

	match, ok := pipeline[0][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, id, match[0].Value)

	require.Equal(t, "$addFields", pipeline[1][0].Key)
	addFields, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	require.Equal(t, "commentsCount", addFields[0].Key)

	// commentsCount = $size($ifNull(comments, [])) so a review without
	// comments reports 0 instead of erroring on a missing array.
	size, ok := addFields[0].Value.(bson.D)
	require.True(t, ok)
	require.Equal(t, "$size", size[0].Key)
	ifNull, ok := size[0].Value.(bson.D)
	require.True(t, ok)
	require.Equal(t, "$ifNull", ifNull[0].Key)
	args, ok := ifNull[0].Value.(bson.A)
	require.True(t, ok)
	assert.Equal(t, "$comments", args[0])
	assert.Equal(t, bson.A{}, args[1])
}

func TestListProjectionExcludesHeavyFields(t *testing.T) {
	projection := listProjection()

	// List views never carry the comment sequence or the restaurantId.
	assert.Equal(t, 0, projection["comments"])
	assert.Equal(t, 0, projection["restaurantId"])
	assert.Equal(t, 0, projection["updatedAt"])
	assert.NotContains(t, projection, "author")
	assert.NotContains(t, projection, "taste")
}
