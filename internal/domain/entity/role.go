// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleManager indicates a clinic manager.
	RoleManager Role = "MANAGER"
	// RoleStaff indicates front-desk staff.
	RoleStaff Role = "STAFF"
	// RoleDoctor indicates a doctor.
	RoleDoctor Role = "DOCTOR"
	// RoleCustomer indicates a customer (patient).
	RoleCustomer Role = "CUSTOMER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleStaff, RoleDoctor, RoleCustomer:
		return true
	default:
		return false
	}
}

// ParseRole converts a string to a Role, ignoring case. The second return
// value reports whether the input named a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}
