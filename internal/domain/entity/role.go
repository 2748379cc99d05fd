package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named bundle of permissions assignable to clients.
// A role always carries at least one permission.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	Active      bool
	Permissions []PermissionGrant
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// PermissionGrant is an atomic capability unit referenced by name,
// e.g. "can_create_product".
type PermissionGrant struct {
	ID          uuid.UUID
	Name        Permission
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// HasPermission reports whether the role holds the named permission.
// Matching is by exact name equality; the active flags are intentionally
// not consulted here, matching the historical behavior of the check.
func (r *Role) HasPermission(perm Permission) bool {
	for i := range r.Permissions {
		if r.Permissions[i].Name == perm {
			return true
		}
	}

	return false
}

// Roles is the set of roles attached to a client.
type Roles []Role

// Combinator selects how a multi-permission check is combined.
type Combinator string

const (
	// CombinatorAND requires the permissions to be held together.
	CombinatorAND Combinator = "AND"
	// CombinatorOR requires any one of the permissions.
	CombinatorOR Combinator = "OR"
)

// HasAll evaluates the AND combinator. The check examines roles in order
// and settles on the first one: if that role holds every listed permission
// the whole check passes, and the moment one permission is missing the
// check fails without falling through to later roles. This mirrors the
// behavior the permission helpers have always had; callers depend on it.
func (rs Roles) HasAll(perms []Permission) bool {
	for i := range rs {
		for _, perm := range perms {
			if !rs[i].HasPermission(perm) {
				return false
			}
		}

		return true
	}

	return false
}

// HasAny evaluates the OR combinator: true as soon as any role holds any
// of the listed permissions.
func (rs Roles) HasAny(perms []Permission) bool {
	for i := range rs {
		for _, perm := range perms {
			if rs[i].HasPermission(perm) {
				return true
			}
		}
	}

	return false
}

// Evaluate applies the given combinator over the permission list.
// An empty role set never grants anything.
func (rs Roles) Evaluate(perms []Permission, comb Combinator) bool {
	if len(rs) == 0 || len(perms) == 0 {
		return false
	}

	if comb == CombinatorOR {
		return rs.HasAny(perms)
	}

	return rs.HasAll(perms)
}
