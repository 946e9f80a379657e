package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// TodoRepository defines persistence operations for todos. Every method that
// addresses a single record takes the owner id and filters on it in the same
// query, so a record owned by someone else is reported as
// domain.ErrTodoNotFound.
type TodoRepository interface {
	// List returns the owner's todos, newest first.
	List(ctx context.Context, ownerID string, filter domain.TodoFilter) ([]*domain.Todo, error)
	FindOwned(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	// Create assigns todo.ID.
	Create(ctx context.Context, todo *domain.Todo) error
	UpdateIfOwned(ctx context.Context, id, ownerID string, patch domain.TodoPatch) (*domain.Todo, error)
	DeleteIfOwned(ctx context.Context, id, ownerID string) (bool, error)
}
