package domain

import (
	"errors"
	"time"
)

// TodoStatus represents the completion state of a todo.
type TodoStatus string

const (
	StatusPending   TodoStatus = "pending"
	StatusCompleted TodoStatus = "completed"
)

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrEmptyPatch    = errors.New("at least one field must be provided")
	ErrInvalidStatus = errors.New("invalid todo status")
)

// Valid reports whether s is one of the known statuses.
func (s TodoStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Todo is the aggregate owned by exactly one user.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TodoStatus `json:"status"`
	OwnerID     string     `json:"ownerId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TodoPatch carries a partial update. Nil fields are left untouched.
// Owner and creation time cannot be patched.
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *TodoStatus
}

// IsEmpty reports whether the patch would change nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// TodoFilter narrows a list query. The owner is passed separately and is
// always enforced.
type TodoFilter struct {
	Status TodoStatus // optional
}
