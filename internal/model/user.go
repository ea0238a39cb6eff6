package model

import "time"

// User represents an account row in the `users` table. Password always
// holds the bcrypt hash, never the plain credential; hashing happens in
// the service layer before the record reaches a repository.
type User struct {
	ID          uint64    // users.id_PK
	Name        string    // users.name
	LastName    string    // users.last_name
	Email       string    // users.email (unique)
	Password    string    // users.password (bcrypt hash)
	IsSuperUser bool      // users.is_super_user
	CreatedAt   time.Time // users.created_at
}
