// Package authz is the pure authorization gate. It has no state and no
// side effects; every mutating store operation for a non-elevated actor
// must pass through it first.
package authz

import "github.com/longkerdandy/burger-backend/internal/models"

// HasElevatedRole reports whether the role set carries ADMIN.
func HasElevatedRole(roles []models.Role) bool {
	for _, role := range roles {
		if role == models.RoleAdmin {
			return true
		}
	}
	return false
}

// CanMutate reports whether the actor may mutate a resource owned by
// ownerUsername: admins always, everyone else only their own resources.
func CanMutate(actorUsername, ownerUsername string, actorRoles []models.Role) bool {
	if HasElevatedRole(actorRoles) {
		return true
	}
	return actorUsername != "" && actorUsername == ownerUsername
}
