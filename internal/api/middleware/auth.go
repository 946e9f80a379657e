package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token, resolves its subject to a stored user and
// attaches the resulting domain.Principal to the request context, where
// handlers read it with domain.PrincipalFromContext. It performs one store
// read and no writes.
func Auth(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				metrics.AuthGateRejectionsTotal.WithLabelValues("missing_token").Inc()
				return httperr.New(http.StatusUnauthorized, "Access denied. No token provided.")
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if raw == "" {
				metrics.AuthGateRejectionsTotal.WithLabelValues("missing_token").Inc()
				return httperr.New(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.AuthGateRejectionsTotal.WithLabelValues("invalid_token").Inc()
				log.Debug().Err(err).Msg("token rejected")
				return httperr.New(http.StatusUnauthorized, "Invalid token.").WithDetails(domain.ErrInvalidToken.Error())
			}

			user, err := users.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthGateRejectionsTotal.WithLabelValues("unknown_subject").Inc()
					return httperr.New(http.StatusUnauthorized, "Invalid token. User not found.")
				}
				metrics.AuthGateRejectionsTotal.WithLabelValues("store_error").Inc()
				return httperr.Internal("Failed to authenticate", err)
			}

			p := domain.Principal{ID: user.ID, Email: user.Email}
			c.SetRequest(c.Request().WithContext(domain.WithPrincipal(c.Request().Context(), p)))

			return next(c)
		}
	}
}
