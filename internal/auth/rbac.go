package auth

import "strings"

// Role is the console access level attached to a user and carried in the
// session token. Gating is a plain lookup, nothing finer-grained.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleStaff  Role = "STAFF"
	RoleViewer Role = "VIEWER"
)

// NormalizeRole maps arbitrary input onto a known role, defaulting to
// viewer.
func NormalizeRole(role string) Role {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleStaff):
		return RoleStaff
	case string(RoleViewer):
		return RoleViewer
	default:
		return RoleViewer
	}
}

// ValidRole reports whether role names one of the known roles.
func ValidRole(role string) bool {
	switch Role(strings.ToUpper(strings.TrimSpace(role))) {
	case RoleAdmin, RoleStaff, RoleViewer:
		return true
	}
	return false
}

// HasRole reports whether role is one of the allowed roles.
func HasRole(role string, allowed ...Role) bool {
	if len(allowed) == 0 {
		return false
	}
	current := NormalizeRole(role)
	for _, candidate := range allowed {
		if current == candidate {
			return true
		}
	}
	return false
}

// IsAdmin reports whether role is the admin role.
func IsAdmin(role string) bool {
	return NormalizeRole(role) == RoleAdmin
}
