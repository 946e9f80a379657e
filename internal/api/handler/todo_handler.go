package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

// TodoHandler handles the owner-scoped todo routes. Every route runs behind
// the Auth middleware; the owner always comes from the principal.
type TodoHandler struct {
	service ports.TodoService
	validID func(string) bool
}

// NewTodoHandler creates a TodoHandler. validID decides whether a path id
// has the shape of a stored identifier; malformed ids never reach the service.
func NewTodoHandler(service ports.TodoService, validID func(string) bool) *TodoHandler {
	return &TodoHandler{service: service, validID: validID}
}

var statusEnumIssue = httperr.Issue{
	Path:    []string{"status"},
	Message: "Invalid enum value. Expected 'pending' | 'completed'",
	Code:    "invalid_enum_value",
}

// List handles GET /todo.
//
// @Summary      List the caller's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"  Enums(pending, completed)
// @Success      200     {object}  todoListEnvelope
// @Failure      400     {object}  httperr.Body
// @Failure      401     {object}  httperr.Body
// @Failure      500     {object}  httperr.Body
// @Router       /todo [get]
func (h *TodoHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	filter := domain.TodoFilter{Status: domain.TodoStatus(c.QueryParam("status"))}
	if filter.Status != "" && !filter.Status.Valid() {
		observe("list", "invalid")
		return httperr.Validation(statusEnumIssue)
	}

	todos, err := h.service.List(c.Request().Context(), p.ID, filter)
	if err != nil {
		return h.fail("list", "Failed to fetch todos", err)
	}

	observe("list", "success")
	return c.JSON(http.StatusOK, todoListEnvelope{Data: toTodoList(todos)})
}

// Create handles POST /todo.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo"
// @Success      201   {object}  todoEnvelope
// @Failure      400   {object}  httperr.Body
// @Failure      401   {object}  httperr.Body
// @Failure      500   {object}  httperr.Body
// @Router       /todo [post]
func (h *TodoHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		observe("create", "invalid")
		return bindError(err)
	}
	trimTitle(&req.Title)
	if err := c.Validate(&req); err != nil {
		observe("create", "invalid")
		return err
	}

	todo, err := h.service.Create(c.Request().Context(), toCreateInput(req, p.ID))
	if err != nil {
		return h.fail("create", "Failed to create todo", err)
	}

	observe("create", "success")
	return c.JSON(http.StatusCreated, todoEnvelope{Data: toTodoResponse(todo)})
}

// Get handles GET /todo/:id.
//
// @Summary      Get one of the caller's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  todoEnvelope
// @Failure      400  {object}  httperr.Body
// @Failure      401  {object}  httperr.Body
// @Failure      404  {object}  httperr.Body
// @Failure      500  {object}  httperr.Body
// @Router       /todo/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !h.validID(id) {
		observe("get", "invalid")
		return httperr.InvalidID()
	}

	todo, err := h.service.Get(c.Request().Context(), id, p.ID)
	if err != nil {
		return h.fail("get", "Failed to fetch todo", err)
	}

	observe("get", "success")
	return c.JSON(http.StatusOK, todoEnvelope{Data: toTodoResponse(todo)})
}

// Update handles PUT /todo/:id. The body must contain at least one of
// title, description or status; other fields are ignored.
//
// @Summary      Update one of the caller's todos
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Todo id"
// @Param        body  body      updateTodoRequest  true  "Fields to change"
// @Success      200   {object}  todoEnvelope
// @Failure      400   {object}  httperr.Body
// @Failure      401   {object}  httperr.Body
// @Failure      404   {object}  httperr.Body
// @Failure      500   {object}  httperr.Body
// @Router       /todo/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !h.validID(id) {
		observe("update", "invalid")
		return httperr.InvalidID()
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		observe("update", "invalid")
		return bindError(err)
	}
	if req.Title == nil && req.Description == nil && req.Status == nil {
		observe("update", "invalid")
		return emptyPatchError()
	}
	trimTitle(req.Title)
	if err := c.Validate(&req); err != nil {
		observe("update", "invalid")
		return err
	}

	todo, err := h.service.Update(c.Request().Context(), id, p.ID, toPatch(req))
	if err != nil {
		return h.fail("update", "Failed to update todo", err)
	}

	observe("update", "success")
	return c.JSON(http.StatusOK, todoEnvelope{Data: toTodoResponse(todo)})
}

// Delete handles DELETE /todo/:id.
//
// @Summary      Delete one of the caller's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  httperr.Body
// @Failure      401  {object}  httperr.Body
// @Failure      404  {object}  httperr.Body
// @Failure      500  {object}  httperr.Body
// @Router       /todo/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if !h.validID(id) {
		observe("delete", "invalid")
		return httperr.InvalidID()
	}

	if err := h.service.Delete(c.Request().Context(), id, p.ID); err != nil {
		return h.fail("delete", "Failed to delete todo", err)
	}

	observe("delete", "success")
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted successful"})
}

// fail translates a service error into its transport form and records it.
func (h *TodoHandler) fail(op, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		observe(op, "not_found")
		return httperr.NotFound()
	case errors.Is(err, domain.ErrEmptyPatch):
		observe(op, "invalid")
		return emptyPatchError()
	case errors.Is(err, domain.ErrInvalidStatus):
		observe(op, "invalid")
		return httperr.Validation(statusEnumIssue)
	}
	observe(op, "error")
	return httperr.Internal(message, err)
}

func emptyPatchError() *httperr.Error {
	return httperr.Validation(httperr.Issue{
		Path:    []string{},
		Message: "At least one field must be provided",
		Code:    "custom",
	})
}

func observe(op, result string) {
	metrics.TodoOperationsTotal.WithLabelValues(op, result).Inc()
}
