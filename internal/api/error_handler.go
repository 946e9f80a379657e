package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders *httperr.Error values produced by handlers and middleware.
//   - Maps known domain errors that escaped a handler to their status codes.
//   - Logs every 5xx with its cause; the cause reaches the client as
//     "details" only when exposeCause is set (non-production).
//   - Renders a consistent JSON envelope: {"error", "details"?, "issues"?}.
func NewHTTPErrorHandler(log zerolog.Logger, exposeCause bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he := resolveError(err)
		if he.Status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(he.Status)
			return
		}
		_ = c.JSON(he.Status, he.Body(exposeCause))
	}
}

func resolveError(err error) *httperr.Error {
	var he *httperr.Error
	if errors.As(err, &he) {
		return he
	}

	// Echo's own errors (404 from router, 405, oversized body, etc.)
	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		msg := fmt.Sprintf("%v", ee.Message)
		if ee.Code == http.StatusNotFound {
			msg = "Not found"
		}
		return &httperr.Error{Status: ee.Code, Message: msg, Err: ee.Internal}
	}

	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		return httperr.NotFound()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return httperr.New(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrUserExists):
		return httperr.New(http.StatusConflict, "User with this email already exists")
	case errors.Is(err, domain.ErrInvalidToken):
		return httperr.New(http.StatusUnauthorized, "Invalid token.").WithDetails(domain.ErrInvalidToken.Error())
	}

	return httperr.Internal("Internal server error", err)
}
