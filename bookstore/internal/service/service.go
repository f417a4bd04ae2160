package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
	bookRepo "github.com/ramilexe/bookstore-service/bookstore/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo bookRepo.Repository
}

func NewService(repo bookRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) CreateBook(ctx context.Context, input model.BookInput) (model.Book, error) {
	return s.repo.CreateBook(ctx, input)
}

func (s *Service) UpdateBook(ctx context.Context, id string, input model.BookInput) error {
	return s.repo.UpdateBook(ctx, id, input)
}

func (s *Service) DeleteBook(ctx context.Context, id string) error {
	return s.repo.DeleteBook(ctx, id)
}
