package models

import "time"

// User is one account record under the "users" key. Email is the unique key,
// matched case-sensitively. Password holds a bcrypt hash.
type User struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionUser is the "currentUser" marker record written on login.
type SessionUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
