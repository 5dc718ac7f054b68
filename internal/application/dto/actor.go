package dto

import "apptracker/internal/domain/constant"

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   constant.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// CanAccess reports whether the actor may act on a resource owned by ownerID.
func (a Actor) CanAccess(ownerID string) bool {
	return a.UserID != "" && (a.UserID == ownerID || a.IsAdmin())
}
