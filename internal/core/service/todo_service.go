package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

// TodoService implements owner-scoped todo use cases. The owner id always
// comes from the authenticated principal.
type TodoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log}
}

func (s *TodoService) List(ctx context.Context, ownerID string, filter domain.TodoFilter) ([]*domain.Todo, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	todos, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	return s.repo.FindOwned(ctx, id, ownerID)
}

func (s *TodoService) Create(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	todo := &domain.Todo{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      status,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", todo.ID).Str("owner_id", todo.OwnerID).Msg("todo created")
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, id, ownerID string, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}

	updated, err := s.repo.UpdateIfOwned(ctx, id, ownerID, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", id).Str("owner_id", ownerID).Msg("todo updated")
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := s.repo.DeleteIfOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTodoNotFound
	}

	s.log.Info().Str("todo_id", id).Str("owner_id", ownerID).Msg("todo deleted")
	return nil
}
