// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core entity in the system, representing one account of any role.
// The ID is a prefixed sequence identifier such as "U007" issued by the
// identifier generator, not a database-assigned key.
type User struct {
	ID           string // Prefixed sequence identifier, e.g. "U001".
	Role         Role   // The user's role: MANAGER, STAFF, DOCTOR or CUSTOMER.
	Name         string // The user's display name or real name.
	Email        string // The user's email, used as the login identifier.
	Phone        string // Contact phone number.
	Address      string // Postal address or simple location text.
	PasswordHash string // bcrypt hash of the user's password. Never the plaintext.
}
