package scope

import (
	"github.com/google/uuid"
	"github.com/northlane/goalboard/internal/user"
)

// Scope is the subset of goal records a caller may read. A ceo gets an
// unrestricted scope; an employee is pinned to their department. An employee
// without a department has an empty scope, which is a valid state that
// yields zero goals rather than an error.
type Scope struct {
	unrestricted bool
	departmentID *uuid.UUID
}

func Unrestricted() Scope {
	return Scope{unrestricted: true}
}

func Department(id uuid.UUID) Scope {
	return Scope{departmentID: &id}
}

func Empty() Scope {
	return Scope{}
}

func ForProfile(u *user.User) Scope {
	if u == nil {
		return Empty()
	}
	if u.Role == user.RoleCEO {
		return Unrestricted()
	}
	if u.DepartmentID == nil {
		return Empty()
	}
	return Department(*u.DepartmentID)
}

func (s Scope) IsUnrestricted() bool {
	return s.unrestricted
}

func (s Scope) IsEmpty() bool {
	return !s.unrestricted && s.departmentID == nil
}

// DepartmentID returns the bound department when the scope is restricted to
// one. The second return is false for unrestricted and empty scopes.
func (s Scope) DepartmentID() (uuid.UUID, bool) {
	if s.departmentID == nil {
		return uuid.Nil, false
	}
	return *s.departmentID, true
}

// Allows reports whether a goal in the given department is visible.
func (s Scope) Allows(departmentID uuid.UUID) bool {
	if s.unrestricted {
		return true
	}
	if s.departmentID == nil {
		return false
	}
	return *s.departmentID == departmentID
}

// CanManageGoals reports whether the caller may create or edit goals.
// Write authorization is stricter than read authorization.
func CanManageGoals(u *user.User) bool {
	return u != nil && u.Role == user.RoleCEO
}

// CanSubmitProgress reports whether the caller may append progress to a
// goal with the given owner. Ownership is checked independently of
// department scope; a ceo is always allowed.
func CanSubmitProgress(u *user.User, ownerUserID *uuid.UUID) bool {
	if u == nil {
		return false
	}
	if u.Role == user.RoleCEO {
		return true
	}
	return ownerUserID != nil && *ownerUserID == u.ID
}
