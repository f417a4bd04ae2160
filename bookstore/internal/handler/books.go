package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.booksSvc.ListBooks(c.Request().Context())
	if err != nil {
		h.log.Error("list books", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch books."})
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var input model.BookInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Title, author, and price are required."})
	}
	if err := c.Validate(&input); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Title, author, and price are required."})
	}
	book, err := h.booksSvc.CreateBook(c.Request().Context(), input)
	if err != nil {
		h.log.Error("create book", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create book."})
	}
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook replaces the stored fields wholesale and echoes the request
// back with the client-supplied id. An id that matches nothing is a silent
// success; only a malformed id or a storage failure is an error.
func (h *Handler) UpdateBook(c echo.Context) error {
	id := c.Param("id")
	var input model.BookInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request body."})
	}
	if err := h.booksSvc.UpdateBook(c.Request().Context(), id, input); err != nil {
		h.log.Error("update book", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to update book."})
	}
	return c.JSON(http.StatusOK, model.UpdateBookResponse{
		ID:          id,
		Title:       input.Title,
		Author:      input.Author,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	})
}

// DeleteBook is idempotent: repeating a delete returns 200 both times.
func (h *Handler) DeleteBook(c echo.Context) error {
	id := c.Param("id")
	if err := h.booksSvc.DeleteBook(c.Request().Context(), id); err != nil {
		h.log.Error("delete book", zap.String("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete book."})
	}
	return c.JSON(http.StatusOK, model.DeleteBookResponse{ID: id})
}
