package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/todoapp/todo-api-go/internal/middleware"
)

// Register mounts the API routes on the router. Credential routes are rate
// limited per IP; todo routes sit behind the token gate.
func Register(r chi.Router, auth *AuthHandler, todos *TodoHandler, jwtSecret string) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", auth.HandleRegister)
		r.Post("/login", auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(jwtSecret))
		r.Post("/add-todo", todos.HandleAddTodo)
		r.Get("/todos/{username}", todos.HandleListTodos)
		r.Get("/todo/{id}", todos.HandleGetTodo)
		r.Delete("/delete-todo/{id}", todos.HandleDeleteTodo)
		r.Put("/update-todo/{id}", todos.HandleUpdateTodo)
	})
}

// NewRouter builds a router with the standard middleware, the health probe and
// all API routes. Shared by main and the handler tests.
func NewRouter(auth *AuthHandler, todos *TodoHandler, jwtSecret string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	Register(r, auth, todos, jwtSecret)
	return r
}
