package handler

import (
	"strings"

	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createTodoRequest, ownerID string) ports.CreateTodoInput {
	return ports.CreateTodoInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TodoStatus(req.Status),
	}
}

func toPatch(req updateTodoRequest) domain.TodoPatch {
	p := domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		s := domain.TodoStatus(*req.Status)
		p.Status = &s
	}
	return p
}

// trimTitle normalises the title in place so length rules apply to the
// trimmed value.
func trimTitle(title *string) {
	if title != nil {
		*title = strings.TrimSpace(*title)
	}
}

// --- Domain → Response ---

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		OwnerID:     t.OwnerID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodoList(todos []*domain.Todo) []todoResponse {
	out := make([]todoResponse, 0, len(todos))
	for _, t := range todos {
		out = append(out, toTodoResponse(t))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email}
}
