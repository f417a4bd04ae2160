package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/internal/errs"
	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go -package=repo_mocks

type Repository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, input model.BookInput) (model.Book, error)
	UpdateBook(ctx context.Context, id string, input model.BookInput) error
	DeleteBook(ctx context.Context, id string) error

	GetUser(ctx context.Context, username string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) error
	SetUserPassword(ctx context.Context, username, digest string) error
}

const usersCollectionName = `users`

type repository struct {
	books *mongo.Collection
	users *mongo.Collection
	log   *zap.Logger
}

func NewRepository(ctx context.Context, db *mongo.Database, booksCollection string, log *zap.Logger) (*repository, error) {
	r := &repository{
		books: db.Collection(booksCollection),
		users: db.Collection(usersCollectionName),
		log:   log.Named("repo"),
	}
	// unique index closes the check-then-insert gap on registration
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "users username index")
	}
	return r, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	cur, err := r.books.Find(ctx, bson.D{})
	if err != nil {
		r.log.Error("ListBooks find", zap.Error(err))
		return nil, err
	}
	books := make([]model.Book, 0)
	if err := cur.All(ctx, &books); err != nil {
		r.log.Error("ListBooks decode", zap.Error(err))
		return nil, err
	}
	return books, nil
}

func (r *repository) CreateBook(ctx context.Context, input model.BookInput) (model.Book, error) {
	res, err := r.books.InsertOne(ctx, input)
	if err != nil {
		r.log.Error("CreateBook", zap.Error(err))
		return model.Book{}, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.Book{}, errors.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return model.Book{
		ID:          id,
		Title:       input.Title,
		Author:      input.Author,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	}, nil
}

// UpdateBook replaces all five fields of the matching document; absent
// optionals are written as null. A filter that matches nothing still
// reports success with zero documents affected.
func (r *repository) UpdateBook(ctx context.Context, id string, input model.BookInput) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "parse id %q", id)
	}
	if _, err := r.books.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": input}); err != nil {
		r.log.Error("UpdateBook", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteBook is idempotent: deleting an id that no longer exists succeeds.
func (r *repository) DeleteBook(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "parse id %q", id)
	}
	if _, err := r.books.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		r.log.Error("DeleteBook", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetUser(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, errs.ErrNotFound
		}
		r.log.Error("GetUser", zap.Error(err))
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) error {
	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrUserExists
		}
		r.log.Error("CreateUser", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) SetUserPassword(ctx context.Context, username, digest string) error {
	if _, err := r.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password": digest}},
	); err != nil {
		r.log.Error("SetUserPassword", zap.Error(err))
		return err
	}
	return nil
}
