package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/config"
	"github.com/ramilexe/bookstore-service/bookstore/internal/errs"
	"github.com/ramilexe/bookstore-service/bookstore/internal/handler"
	"github.com/ramilexe/bookstore-service/bookstore/internal/model"
	"github.com/ramilexe/bookstore-service/pkg/validate"

	service_mocks "github.com/ramilexe/bookstore-service/bookstore/internal/handler/mocks"
)

const bookID = "64daa41bfc13ae36d1a2f1c4"

func fptr(f float64) *float64 { return &f }
func sptr(s string) *string   { return &s }

func newTestRouter(t *testing.T, books handler.BooksService, auth handler.AuthService) *echo.Echo {
	t.Helper()
	log := zap.NewExample().Named("test")
	h := handler.New(books, auth, config.Server{}, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/books", h.ListBooks)
	e.POST("/api/books", h.CreateBook)
	e.PUT("/api/books/:id", h.UpdateBook)
	e.DELETE("/api/books/:id", h.DeleteBook)
	e.POST("/api/users/register", h.Register)
	e.POST("/api/users/login", h.Login)
	return e
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBooksService)

	oid, err := primitive.ObjectIDFromHex(bookID)
	require.NoError(t, err)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					ListBooks(context.Background()).
					Return([]model.Book{
						{
							ID:     oid,
							Title:  "Dune",
							Author: "Frank Herbert",
							Price:  fptr(9.99),
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"_id":"` + bookID + `","title":"Dune","author":"Frank Herbert","price":9.99,"description":null,"image":null}]`,
			},
		},
		{
			name: "ok. empty",
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					ListBooks(context.Background()).
					Return([]model.Book{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					ListBooks(context.Background()).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Failed to fetch books."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			booksSvc := service_mocks.NewMockBooksService(c)
			tt.mockBehavior(booksSvc)
			e := newTestRouter(t, booksSvc, service_mocks.NewMockAuthService(c))

			r := httptest.NewRequest(http.MethodGet, "/api/books", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBooksService)

	oid, err := primitive.ObjectIDFromHex(bookID)
	require.NoError(t, err)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"Dune","author":"Frank Herbert","price":9.99,"description":"sci-fi classic"}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					CreateBook(context.Background(), model.BookInput{
						Title:       "Dune",
						Author:      "Frank Herbert",
						Price:       fptr(9.99),
						Description: sptr("sci-fi classic"),
					}).
					Return(model.Book{
						ID:          oid,
						Title:       "Dune",
						Author:      "Frank Herbert",
						Price:       fptr(9.99),
						Description: sptr("sci-fi classic"),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"_id":"` + bookID + `","title":"Dune","author":"Frank Herbert","price":9.99,"description":"sci-fi classic","image":null}`,
			},
		},
		{
			name: "ok. explicit zero price",
			body: `{"title":"Freebie","author":"Nobody","price":0}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					CreateBook(context.Background(), model.BookInput{
						Title:  "Freebie",
						Author: "Nobody",
						Price:  fptr(0),
					}).
					Return(model.Book{
						ID:     oid,
						Title:  "Freebie",
						Author: "Nobody",
						Price:  fptr(0),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"_id":"` + bookID + `","title":"Freebie","author":"Nobody","price":0,"description":null,"image":null}`,
			},
		},
		{
			name:         "err. missing price",
			body:         `{"title":"Dune","author":"Frank Herbert"}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Title, author, and price are required."}`,
			},
		},
		{
			name:         "err. missing title",
			body:         `{"author":"Frank Herbert","price":9.99}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Title, author, and price are required."}`,
			},
		},
		{
			name:         "err. negative price",
			body:         `{"title":"Dune","author":"Frank Herbert","price":-1}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Title, author, and price are required."}`,
			},
		},
		{
			name: "err. internal",
			body: `{"title":"Dune","author":"Frank Herbert","price":9.99}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					CreateBook(context.Background(), gomock.Any()).
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Failed to create book."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			booksSvc := service_mocks.NewMockBooksService(c)
			tt.mockBehavior(booksSvc)
			e := newTestRouter(t, booksSvc, service_mocks.NewMockAuthService(c))

			r := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBooksService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok. echoes body with supplied id",
			body: `{"title":"Dune Messiah","author":"Frank Herbert","price":12.5}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					UpdateBook(context.Background(), bookID, model.BookInput{
						Title:  "Dune Messiah",
						Author: "Frank Herbert",
						Price:  fptr(12.5),
					}).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"_id":"` + bookID + `","title":"Dune Messiah","author":"Frank Herbert","price":12.5,"description":null,"image":null}`,
			},
		},
		{
			name: "ok. empty body is applied blindly",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					UpdateBook(context.Background(), bookID, model.BookInput{}).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"_id":"` + bookID + `","title":"","author":"","price":null,"description":null,"image":null}`,
			},
		},
		{
			name: "err. internal",
			body: `{"title":"Dune Messiah"}`,
			mockBehavior: func(r *service_mocks.MockBooksService) {
				r.EXPECT().
					UpdateBook(context.Background(), bookID, gomock.Any()).
					Return(errors.New("invalid ObjectID"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Failed to update book."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			booksSvc := service_mocks.NewMockBooksService(c)
			tt.mockBehavior(booksSvc)
			e := newTestRouter(t, booksSvc, service_mocks.NewMockAuthService(c))

			r := httptest.NewRequest(http.MethodPut, "/api/books/"+bookID, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("ok. idempotent", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		booksSvc := service_mocks.NewMockBooksService(c)
		// deleting an id that no longer exists still succeeds
		booksSvc.EXPECT().
			DeleteBook(context.Background(), bookID).
			Return(nil).
			Times(2)
		e := newTestRouter(t, booksSvc, service_mocks.NewMockAuthService(c))

		for i := 0; i < 2; i++ {
			r := httptest.NewRequest(http.MethodDelete, "/api/books/"+bookID, http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)
			require.Equal(t, `{"_id":"`+bookID+`"}`, strings.Trim(w.Body.String(), "\n"))
		}
	})

	t.Run("err. internal", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		booksSvc := service_mocks.NewMockBooksService(c)
		booksSvc.EXPECT().
			DeleteBook(context.Background(), "oops").
			Return(errors.New("invalid ObjectID"))
		e := newTestRouter(t, booksSvc, service_mocks.NewMockAuthService(c))

		r := httptest.NewRequest(http.MethodDelete, "/api/books/oops", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, `{"error":"Failed to delete book."}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"paul","password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(context.Background(), model.Credentials{Username: "paul", Password: "muaddib"}).
					Return(nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"message":"User created."}`,
			},
		},
		{
			name: "err. duplicate username",
			body: `{"username":"paul","password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(context.Background(), model.Credentials{Username: "paul", Password: "muaddib"}).
					Return(errs.ErrUserExists)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"error":"User already exists."}`,
			},
		},
		{
			name:         "err. missing password",
			body:         `{"username":"paul"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Username and password are required."}`,
			},
		},
		{
			name: "err. internal",
			body: `{"username":"paul","password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Register(context.Background(), gomock.Any()).
					Return(errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Failed to create user."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			authSvc := service_mocks.NewMockAuthService(c)
			tt.mockBehavior(authSvc)
			e := newTestRouter(t, service_mocks.NewMockBooksService(c), authSvc)

			r := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"username":"paul","password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), model.Credentials{Username: "paul", Password: "muaddib"}).
					Return("paul", nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"username":"paul"}`,
			},
		},
		{
			name: "err. wrong password",
			body: `{"username":"paul","password":"nope"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), model.Credentials{Username: "paul", Password: "nope"}).
					Return("", errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"error":"Invalid credentials."}`,
			},
		},
		{
			// same status and body as the wrong-password case
			name: "err. unknown user",
			body: `{"username":"ghost","password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), model.Credentials{Username: "ghost", Password: "muaddib"}).
					Return("", errs.ErrInvalidCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"error":"Invalid credentials."}`,
			},
		},
		{
			name:         "err. missing username",
			body:         `{"password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Username and password are required."}`,
			},
		},
		{
			name: "err. internal",
			body: `{"username":"paul","password":"muaddib"}`,
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), gomock.Any()).
					Return("", errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Login failed."}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			authSvc := service_mocks.NewMockAuthService(c)
			tt.mockBehavior(authSvc)
			e := newTestRouter(t, service_mocks.NewMockBooksService(c), authSvc)

			r := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
