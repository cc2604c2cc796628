package model

import "github.com/google/uuid"

const (
	RoleAdmin      = "ADMIN"
	RoleDispatcher = "DISPATCHER"
	RoleViewer     = "VIEWER"
)

type Principal struct {
	UserID uuid.UUID
	OrgID  uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsDispatcher() bool {
	return p.Role == RoleDispatcher
}

// CanManageVehicles reports whether the principal may register or
// modify fleet vehicles.
func (p Principal) CanManageVehicles() bool {
	return p.IsAdmin() || p.IsDispatcher()
}
