package util

import "github.com/rawan03ayman/Employee-Training-System/internal/model"

// IsAdmin reports whether the caller holds the Admin role.
func IsAdmin(claims *Claims) bool {
	return claims != nil && claims.Role == model.RoleAdmin
}

// IsOwnerOrAdmin is the owner-or-admin rule: a subject may act on its own
// resource, and an admin may act on any resource.
func IsOwnerOrAdmin(claims *Claims, ownerID uint) bool {
	if claims == nil {
		return false
	}
	return claims.Role == model.RoleAdmin || claims.UserID == ownerID
}
