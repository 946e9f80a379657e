package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/todo-service/internal/api/httperr"
	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/core/domain"
	"github.com/99minutos/todo-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account and returns a session token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Email and password"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  httperr.Body
// @Failure      409   {object}  httperr.Body
// @Failure      429   {object}  httperr.Body
// @Failure      500   {object}  httperr.Body
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		return bindError(err)
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		return err
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "conflict").Inc()
			return httperr.New(http.StatusConflict, "User with this email already exists")
		}
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
		return httperr.Internal("Failed to create user", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Message: "User created successfully",
		Data:    authData{User: toUserResponse(user), Token: token},
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  httperr.Body
// @Failure      401   {object}  httperr.Body
// @Failure      429   {object}  httperr.Body
// @Failure      500   {object}  httperr.Body
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return bindError(err)
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := c.Validate(&req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
			return httperr.New(http.StatusUnauthorized, "Invalid email or password")
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return httperr.Internal("Failed to login", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Data:    authData{User: toUserResponse(user), Token: token},
	})
}
