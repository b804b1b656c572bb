package model

import "time"

// Todo represents a todo item in the database. Username is a free-form owner
// reference; no foreign key ties it to a registered user.
type Todo struct {
	ID          string
	Title       string
	IsCompleted bool
	DateTime    time.Time
	Username    string
}

// CreateTodoRequest represents a todo creation request.
// Pointer bool distinguishes a missing isCompleted field from an explicit false.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	IsCompleted *bool  `json:"isCompleted"`
	Username    string `json:"username"`
}

// UpdateTodoRequest represents a partial todo update. Nil fields are left
// untouched.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	IsCompleted *bool   `json:"isCompleted"`
}

// TodoResponse represents a todo item in API responses.
type TodoResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
	DateTime    time.Time `json:"dateTime"`
	Username    string    `json:"username"`
}
