package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is a stored document. Optional fields are pointers so an absent
// value round-trips as null instead of a zero value.
type Book struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Author      string             `json:"author" bson:"author"`
	Price       *float64           `json:"price" bson:"price"`
	Description *string            `json:"description" bson:"description"`
	Image       *string            `json:"image" bson:"image"`
}

// BookInput is the create/update body. Price is a pointer so that an
// explicit 0 passes the required check while a missing field does not.
type BookInput struct {
	Title       string   `json:"title" bson:"title" validate:"required"`
	Author      string   `json:"author" bson:"author" validate:"required"`
	Price       *float64 `json:"price" bson:"price" validate:"required,gte=0"`
	Description *string  `json:"description" bson:"description"`
	Image       *string  `json:"image" bson:"image"`
}

type User struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateBookResponse echoes the request body back with the client-supplied
// id; the stored document is not re-fetched.
type UpdateBookResponse struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

type DeleteBookResponse struct {
	ID string `json:"_id"`
}

type LoginResponse struct {
	Username string `json:"username"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
