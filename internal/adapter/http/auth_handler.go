package http

import (
	"errors"
	"net/http"

	"studentloan-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

func (h *AuthHandler) Register(c echo.Context) error {
	var req auth.RegisterInput
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	s, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req auth.LoginInput
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	s, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func writeAuthError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrMissingFields):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrEmailTaken):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrIncompleteAccount):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
