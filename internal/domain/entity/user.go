package entity

import "time"

// User is the account aggregate. Passwords are stored as bcrypt hashes in
// Password and never serialized in responses.
type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
