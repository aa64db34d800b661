package model

import "strings"

type Role string

const (
	RoleUnknown Role = ""
	RoleViewer  Role = "viewer"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
)

func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "viewer":
		return RoleViewer
	case "manager", "gm", "general manager":
		return RoleManager
	case "admin":
		return RoleAdmin
	case "owner":
		return RoleOwner
	default:
		return RoleUnknown
	}
}

// roleInherits is the explicit inheritance table. Each role includes itself.
// Permission checks are set-membership lookups against this table, never
// string comparisons.
var roleInherits = map[Role]map[Role]bool{
	RoleViewer: {
		RoleViewer: true,
	},
	RoleManager: {
		RoleViewer:  true,
		RoleManager: true,
	},
	RoleAdmin: {
		RoleViewer:  true,
		RoleManager: true,
		RoleAdmin:   true,
	},
	RoleOwner: {
		RoleViewer:  true,
		RoleManager: true,
		RoleAdmin:   true,
		RoleOwner:   true,
	},
}

// HasRole reports whether r grants the privileges of required, directly or
// through inheritance. RoleUnknown grants nothing.
func (r Role) HasRole(required Role) bool {
	set, ok := roleInherits[r]
	if !ok {
		return false
	}
	return set[required]
}

// User is an account that can hit the admin surfaces. Password handling is
// delegated to the web layer's auth middleware.
type User struct {
	ID       int32
	Username string
	Role     Role
}
