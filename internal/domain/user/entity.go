package user

import "time"

// Role of an authenticated principal. Accounts are provisioned by the identity
// provider; this service only consumes the role claim.
type Role string

const (
	// RoleAdmin is the master administrator with unrestricted scope.
	RoleAdmin Role = "admin"
	// RolePartner is an agency account scoped to its own supplied employees.
	RolePartner Role = "partner"
	// RoleStaff is an internal operator scoped to house employees.
	RoleStaff Role = "staff"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RolePartner, RoleStaff:
		return true
	}
	return false
}

type User struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
