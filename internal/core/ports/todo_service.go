package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// CreateTodoInput carries the data needed to create a todo. OwnerID always
// comes from the authenticated principal, never from the request body.
type CreateTodoInput struct {
	OwnerID     string
	Title       string
	Description string
	Status      domain.TodoStatus // empty = pending
}

// TodoService defines the use-case operations for todos.
type TodoService interface {
	List(ctx context.Context, ownerID string, filter domain.TodoFilter) ([]*domain.Todo, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	Create(ctx context.Context, input CreateTodoInput) (*domain.Todo, error)
	Update(ctx context.Context, id, ownerID string, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id, ownerID string) error
}
