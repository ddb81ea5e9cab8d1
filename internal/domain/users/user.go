// Package users defines ETREE users and the roles that authorise change
// request transitions.
package users

import (
	"sort"
	"strings"
	"time"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/validators"
)

// Role grants an authority to a user.
type Role string

// Known roles
const (
	RoleCCBApprover Role = "CCB_APPROVER"
	RoleAdmin       Role = "ADMIN"
	RoleSystem      Role = "SYSTEM"
)

// ParseRole converts user input into a Role.
func ParseRole(value string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(value)))
	switch r {
	case RoleCCBApprover, RoleAdmin, RoleSystem:
		return r, true
	case "CCB":
		return RoleCCBApprover, true
	default:
		return r, false
	}
}

// User is a person or service account known to ETREE.
type User struct {
	Login     string `validate:"required,login,max=64"`
	Name      string `validate:"required,max=128"`
	Email     string `validate:"omitempty,email"`
	Roles     []Role `validate:"dive,oneof=CCB_APPROVER ADMIN SYSTEM"`
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.Struct(u)
}

// HasRole reports whether the user holds role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsCCBApprover reports whether the user may approve change requests.
func (u *User) IsCCBApprover() bool {
	return u.Active && u.HasRole(RoleCCBApprover)
}

// IsSystemAccount reports whether the user is a designated system account.
func (u *User) IsSystemAccount() bool {
	return u.Active && u.HasRole(RoleSystem)
}

// SetRoles replaces the user's roles with a sorted, de-duplicated set.
func (u *User) SetRoles(roles []Role) {
	seen := make(map[Role]bool, len(roles))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	u.Roles = out
}

// UserUpdate carries the mutable fields of a user; nil means unchanged.
type UserUpdate struct {
	Name        *string
	Email       *string
	Active      *bool
	AddRoles    []Role
	RemoveRoles []Role
}

// Apply merges the update into u.
func (up *UserUpdate) Apply(u *User) {
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.Active != nil {
		u.Active = *up.Active
	}
	roles := append([]Role{}, up.AddRoles...)
	for _, r := range u.Roles {
		removed := false
		for _, rm := range up.RemoveRoles {
			if r == rm {
				removed = true
				break
			}
		}
		if !removed {
			roles = append(roles, r)
		}
	}
	u.SetRoles(roles)
}
