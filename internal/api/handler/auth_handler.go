package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/airbean/order-system/internal/api/metrics"
	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      500   {object}  authResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Message: err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, authResponse{Message: "user already exists"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, authResponse{Message: "invalid registration details"})
		}
		return c.JSON(http.StatusInternalServerError, authResponse{Message: "server error"})
	}

	return c.JSON(http.StatusCreated, authResponse{Success: true, Message: "registration successful"})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  authResponse
// @Failure      500   {object}  authResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, authResponse{Message: err.Error()})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// "no such user" and "wrong password" are deliberately indistinguishable.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, authResponse{Message: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, authResponse{Message: "server error"})
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{Success: true, Token: token})
}
