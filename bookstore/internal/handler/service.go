package handler

import (
	"context"

	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
	"github.com/ramilexe/bookstore-service/bookstore/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

var (
	_ BooksService = (*service.Service)(nil)
	_ AuthService  = (*service.Service)(nil)
)

type BooksService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, input model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id string, input model.BookInput) error
	DeleteBook(ctx context.Context, id string) error
}

type AuthService interface {
	Register(ctx context.Context, creds model.Credentials) error
	Login(ctx context.Context, creds model.Credentials) (string, error)
}
