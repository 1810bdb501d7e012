// Package domain holds the user model shared by the users context.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a member of the user_role enumeration.
type Role string

const (
	RoleSalesRep      Role = "SALES_REP"
	RoleSalesCoord    Role = "SALES_COORD"
	RoleTechInspector Role = "TECH_INSPECTOR"
	RoleSalesManager  Role = "SALES_MGR"
	RoleProjectMgr    Role = "PROJECT_MGR"
	RoleAdmin         Role = "ADMIN"
)

var roles = []Role{
	RoleSalesRep,
	RoleSalesCoord,
	RoleTechInspector,
	RoleSalesManager,
	RoleProjectMgr,
	RoleAdmin,
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return append([]Role(nil), roles...)
}

// IsValidRole reports whether value names a role exactly.
func IsValidRole(value string) bool {
	for _, r := range roles {
		if string(r) == value {
			return true
		}
	}
	return false
}

// User is a stored account. PasswordHash never leaves the users context.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Mobile       *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
