package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/service"
)

// TodoHandler handles HTTP requests for todo CRUD operations.
type TodoHandler struct {
	service *service.TodoService
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{service: svc}
}

// HandleAddTodo handles POST /add-todo requests.
func (h *TodoHandler) HandleAddTodo(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, "Enter the values in correct format!")
		return
	}

	if _, err := h.service.Create(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrInvalidTodoFields) {
			respond(w, http.StatusBadRequest, "Enter the values in correct format!")
			return
		}
		respondData(w, http.StatusBadRequest, "Creating a todo failed", err.Error())
		return
	}

	respond(w, http.StatusCreated, "Todo Created Successfully")
}

// HandleListTodos handles GET /todos/{username} requests. The page query
// parameter is 1-based; missing or unparseable values mean page 1.
func (h *TodoHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	todos, err := h.service.List(r.Context(), username, page)
	if err != nil {
		respondData(w, http.StatusBadRequest, "Failed to get all todos for username", err.Error())
		return
	}

	respondData(w, http.StatusOK, "get todos for username is successfull", todos)
}

// HandleGetTodo handles GET /todo/{id} requests. A missing todo is a success
// with null data.
func (h *TodoHandler) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	todo, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondData(w, http.StatusBadRequest, "Failed to get todo by ID", err.Error())
		return
	}

	respondData(w, http.StatusOK, "Fetching todo by todo ID is successfull", todo)
}

// HandleDeleteTodo handles DELETE /delete-todo/{id} requests. Deleting an
// absent todo still succeeds.
func (h *TodoHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondData(w, http.StatusBadRequest, "Failed to delete todo by id", err.Error())
		return
	}

	respond(w, http.StatusOK, "Todo by ID successfully deleted!")
}

// HandleUpdateTodo handles PUT /update-todo/{id} requests. Updating an absent
// todo still succeeds without creating a record.
func (h *TodoHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondData(w, http.StatusBadRequest, "Failed to update todo by ID", err.Error())
		return
	}

	if err := h.service.Update(r.Context(), id, req); err != nil {
		respondData(w, http.StatusBadRequest, "Failed to update todo by ID", err.Error())
		return
	}

	respond(w, http.StatusOK, "Todo by ID successfully updated!")
}
