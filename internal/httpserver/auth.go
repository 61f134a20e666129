package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/service"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type AuthHTTP struct {
	Auth  *service.AuthService
	Users *service.UserService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	resp, err := h.Auth.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	resp, err := h.Auth.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil || req.RefreshToken == "" {
		return apperr.Validation("refresh_token is required")
	}

	resp, err := h.Auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"username": name})
}

func (h *AuthHTTP) ChangePassword(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	if err := h.Users.UpdatePassword(c.Request().Context(), name, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHTTP) UpdateProfile(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	user, err := h.Users.UpdateProfile(c.Request().Context(), name, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHTTP) DeleteProfile(c echo.Context) error {
	name, err := username(c)
	if err != nil {
		return err
	}

	var req transport.DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	if err := h.Users.DeleteAccount(c.Request().Context(), name, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
