package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/todoapp/todo-api-go/internal/model"
)

var ErrTodoNotFound = errors.New("todo not found")

// PageSize is the fixed number of todos returned per list page.
const PageSize = 5

const createTodosTable = `
CREATE TABLE IF NOT EXISTS todos (
	id VARCHAR(36) PRIMARY KEY,
	title TEXT NOT NULL,
	is_completed BOOLEAN NOT NULL,
	date_time DATETIME NOT NULL,
	username VARCHAR(191) NOT NULL
)`

// TodoRepository handles todo persistence operations.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Init creates the todos table if it does not exist.
func (r *TodoRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTodosTable); err != nil {
		return fmt.Errorf("create todos table: %w", err)
	}
	return nil
}

// Create inserts a new todo. A missing ID is generated and a zero DateTime
// defaults to the current time, both set back on the struct.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}
	if todo.DateTime.IsZero() {
		todo.DateTime = time.Now().UTC()
	}

	query := `INSERT INTO todos (id, title, is_completed, date_time, username) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.Title, todo.IsCompleted, todo.DateTime, todo.Username,
	)
	return err
}

// GetByID retrieves a todo by its identifier.
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	query := `SELECT id, title, is_completed, date_time, username FROM todos WHERE id = ?`

	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&todo.ID, &todo.Title, &todo.IsCompleted, &todo.DateTime, &todo.Username,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	return todo, nil
}

// ListByUsername retrieves one page of todos for a username. Pages are
// 1-based and PageSize items long, ordered by creation time so pagination is
// stable across requests.
func (r *TodoRepository) ListByUsername(ctx context.Context, username string, page int) ([]model.Todo, error) {
	if page < 1 {
		page = 1
	}

	query := `SELECT id, title, is_completed, date_time, username FROM todos
		WHERE username = ? ORDER BY date_time, id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, username, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.IsCompleted, &t.DateTime, &t.Username); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// Update applies a partial update to a todo. Nil fields are left unchanged.
// Updating an absent id is a silent no-op.
func (r *TodoRepository) Update(ctx context.Context, id string, title *string, isCompleted *bool) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *title)
	}
	if isCompleted != nil {
		sets = append(sets, "is_completed = ?")
		args = append(args, *isCompleted)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := "UPDATE todos SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// Delete removes a todo by id. Deleting an absent id is a silent no-op.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	return err
}
