package model

import "time"

// User roles.  ADMIN may perform every mutating operation; SALES is the
// read-only dashboard role.
const (
	RoleAdmin = "ADMIN"
	RoleSales = "SALES"
)

// ValidRole reports whether r names a recognised role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleSales
}

// User represents an application account as stored in the `users`
// table.  Passwords are kept only as bcrypt hashes, never plaintext.
//
// The PasswordHash field serialises under the `password` key because
// the admin user listing historically exposed the stored hash; see
// DESIGN.md before changing this.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  Role         – ADMIN or SALES.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    `json:"id"`        // users.id
	Email        string    `json:"email"`     // users.email
	PasswordHash string    `json:"password"`  // users.password_hash
	Role         string    `json:"role"`      // users.role
	CreatedAt    time.Time `json:"createdAt"` // users.created_at
	UpdatedAt    time.Time `json:"updatedAt"` // users.updated_at
}
