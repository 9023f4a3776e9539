package authz

import (
	"testing"

	"github.com/longkerdandy/burger-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHasElevatedRole(t *testing.T) {
	assert.True(t, HasElevatedRole([]models.Role{models.RoleAdmin}))
	assert.True(t, HasElevatedRole([]models.Role{models.RoleUser, models.RoleAdmin}))
	assert.False(t, HasElevatedRole([]models.Role{models.RoleUser}))
	assert.False(t, HasElevatedRole(nil))
}

func TestCanMutateOwner(t *testing.T) {
	assert.True(t, CanMutate("alice", "alice", []models.Role{models.RoleUser}))
}

func TestCanMutateAdmin(t *testing.T) {
	assert.True(t, CanMutate("bob", "alice", []models.Role{models.RoleAdmin}))
}

func TestCanMutateDenied(t *testing.T) {
	assert.False(t, CanMutate("bob", "alice", []models.Role{models.RoleUser}))
	assert.False(t, CanMutate("", "", []models.Role{models.RoleUser}))
	assert.False(t, CanMutate("bob", "alice", nil))
}
