package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/core/domain"
)

// principal returns the identity the Auth middleware attached to the
// request. Its absence means the route was mounted without the gate.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := domain.PrincipalFromContext(c.Request().Context())
	if !ok || p.ID == "" {
		return domain.Principal{}, httperr.New(http.StatusUnauthorized, "Access denied. No token provided.")
	}
	return p, nil
}
