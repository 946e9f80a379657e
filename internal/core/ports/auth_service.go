package ports

import (
	"context"

	"github.com/99minutos/todo-service/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// PasswordHasher hashes and verifies passwords. Verify never fails loudly:
// any mismatch or malformed hash is reported as false.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) bool
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	Issue(subject, email string) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
