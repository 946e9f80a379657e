package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

// UserRepository defines the persistence operations for user credentials.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID never populates PasswordHash.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
