package repository

import (
	"testing"

	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestInsertDelta(t *testing.T) {
	review := &models.Review{Taste: 4, Texture: 3, Virtual: 5}
	d := InsertDelta(review)

	assert.Equal(t, int64(4), d.TasteTotal)
	assert.Equal(t, int64(1), d.TasteCount)
	assert.Equal(t, int64(3), d.TextureTotal)
	assert.Equal(t, int64(1), d.TextureCount)
	assert.Equal(t, int64(5), d.VirtualTotal)
	assert.Equal(t, int64(1), d.VirtualCount)
}

// Inserting then deleting the same review must leave the aggregate
// exactly where it started.
func TestDeltaRoundTrip(t *testing.T) {
	review := &models.Review{Taste: 4, Texture: 2, Virtual: 0}
	ins := InsertDelta(review)
	del := DeleteDelta(review)

	assert.Zero(t, ins.TasteTotal+del.TasteTotal)
	assert.Zero(t, ins.TasteCount+del.TasteCount)
	assert.Zero(t, ins.TextureTotal+del.TextureTotal)
	assert.Zero(t, ins.TextureCount+del.TextureCount)
	assert.Zero(t, ins.VirtualTotal+del.VirtualTotal)
	assert.Zero(t, ins.VirtualCount+del.VirtualCount)
}

func TestRatingIncrementDocument(t *testing.T) {
	review := &models.Review{Taste: 2, Texture: 1, Virtual: 3}
	update := ratingIncrement(InsertDelta(review))

	require.Len(t, update, 2)
	assert.Equal(t, "$inc", update[0].Key)
	assert.Equal(t, "$set", update[1].Key)

	inc, ok := update[0].Value.(bson.D)
	require.True(t, ok)
	require.Len(t, inc, 6)

	got := make(map[string]int64, len(inc))
	for _, e := range inc {
		got[e.Key] = e.Value.(int64)
	}
	assert.Equal(t, int64(2), got["rating.tasteTotal"])
	assert.Equal(t, int64(1), got["rating.tasteCount"])
	assert.Equal(t, int64(1), got["rating.textureTotal"])
	assert.Equal(t, int64(1), got["rating.textureCount"])
	assert.Equal(t, int64(3), got["rating.virtualTotal"])
	assert.Equal(t, int64(1), got["rating.virtualCount"])
}
