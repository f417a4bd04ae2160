package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/internal/errs"
	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
)

func (h *Handler) Register(c echo.Context) error {
	var creds model.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Username and password are required."})
	}
	if err := c.Validate(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Username and password are required."})
	}
	if err := h.authSvc.Register(c.Request().Context(), creds); err != nil {
		if errors.Is(err, errs.ErrUserExists) {
			return c.JSON(http.StatusConflict, model.ErrorResponse{Error: "User already exists."})
		}
		h.log.Error("register", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create user."})
	}
	return c.JSON(http.StatusCreated, model.MessageResponse{Message: "User created."})
}

func (h *Handler) Login(c echo.Context) error {
	var creds model.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Username and password are required."})
	}
	if err := c.Validate(&creds); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Username and password are required."})
	}
	username, err := h.authSvc.Login(c.Request().Context(), creds)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Invalid credentials."})
		}
		h.log.Error("login", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Login failed."})
	}
	return c.JSON(http.StatusOK, model.LoginResponse{Username: username})
}
