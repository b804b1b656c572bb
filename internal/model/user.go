package model

import "time"

// User represents a registered user in the database. Password holds only the
// bcrypt hash, never the plaintext.
type User struct {
	Name      string
	Username  string
	Password  string
	Email     string
	CreatedAt time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
