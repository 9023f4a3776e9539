package dto

import (
	"testing"

	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReviewResponseFrom(t *testing.T) {
	review := &models.Review{
		ID:            primitive.NewObjectID(),
		RestaurantID:  primitive.NewObjectID(),
		Author:        models.Author{Username: "alice", Nickname: "Al"},
		Taste:         4,
		Texture:       3,
		Virtual:       5,
		Content:       "great",
		CommentsCount: 2,
	}

	resp := ReviewResponseFrom(review)

	assert.Equal(t, review.ID.Hex(), resp.ID)
	assert.Equal(t, review.RestaurantID.Hex(), resp.RestaurantID)
	assert.Equal(t, "alice", resp.Author.Username)
	assert.Equal(t, int64(2), resp.CommentsCount)
}

// A list-view review comes back from the store without restaurantId or
// comments; the response must not resurrect either.
func TestReviewResponseFromProjected(t *testing.T) {
	review := &models.Review{
		ID:     primitive.NewObjectID(),
		Author: models.Author{Username: "alice"},
		Taste:  4,
	}

	resp := ReviewResponseFrom(review)

	assert.Empty(t, resp.RestaurantID)
	assert.Nil(t, resp.Comments)
	assert.Zero(t, resp.CommentsCount)
}

func TestAuthorSnapshotIsValueCopy(t *testing.T) {
	user := &models.User{Username: "alice", Avatar: "a.png", Nickname: "Al"}
	snapshot := user.Snapshot()

	user.Avatar = "b.png"
	user.Nickname = "Alice"

	assert.Equal(t, "a.png", snapshot.Avatar)
	assert.Equal(t, "Al", snapshot.Nickname)
}
