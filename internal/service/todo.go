package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/todoapp/todo-api-go/internal/model"
	"github.com/todoapp/todo-api-go/internal/repository"
)

var (
	ErrInvalidTodoFields = errors.New("title, isCompleted and username are required")
	ErrInvalidTodoID     = errors.New("invalid todo id")
)

// TodoService handles todo business logic.
type TodoService struct {
	todos *repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(todos *repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// Create validates and persists a new todo. Title and username must be
// non-empty and isCompleted must be present in the request body.
func (s *TodoService) Create(ctx context.Context, req model.CreateTodoRequest) (model.TodoResponse, error) {
	if req.Title == "" || req.Username == "" || req.IsCompleted == nil {
		return model.TodoResponse{}, ErrInvalidTodoFields
	}

	todo := &model.Todo{
		Title:       req.Title,
		IsCompleted: *req.IsCompleted,
		Username:    req.Username,
	}

	if err := s.todos.Create(ctx, todo); err != nil {
		return model.TodoResponse{}, err
	}

	return todoToResponse(*todo), nil
}

// List returns one page of todos for a username. Pages below 1 are treated
// as page 1.
func (s *TodoService) List(ctx context.Context, username string, page int) ([]model.TodoResponse, error) {
	if page < 1 {
		page = 1
	}

	todos, err := s.todos.ListByUsername(ctx, username, page)
	if err != nil {
		return nil, err
	}

	result := make([]model.TodoResponse, len(todos))
	for i, t := range todos {
		result[i] = todoToResponse(t)
	}
	return result, nil
}

// Get retrieves a todo by id. A missing todo is not an error; it yields a nil
// response.
func (s *TodoService) Get(ctx context.Context, id string) (*model.TodoResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resp := todoToResponse(*todo)
	return &resp, nil
}

// Update applies a partial update. Updating a missing todo is a no-op.
func (s *TodoService) Update(ctx context.Context, id string, req model.UpdateTodoRequest) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.todos.Update(ctx, id, req.Title, req.IsCompleted)
}

// Delete removes a todo by id, idempotently.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.todos.Delete(ctx, id)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidTodoID
	}
	return nil
}

func todoToResponse(t model.Todo) model.TodoResponse {
	return model.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		DateTime:    t.DateTime,
		Username:    t.Username,
	}
}
