package handler

import (
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ramilexe/bookstore-service/bookstore/config"
	md "github.com/ramilexe/bookstore-service/pkg/middleware"
	"github.com/ramilexe/bookstore-service/pkg/validate"
)

type Handler struct {
	booksSvc BooksService
	authSvc  AuthService
	cfg      config.Server
	log      *zap.Logger
}

func New(booksSvc BooksService, authSvc AuthService, cfg config.Server, log *zap.Logger) *Handler {
	return &Handler{
		booksSvc: booksSvc,
		authSvc:  authSvc,
		cfg:      cfg,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const apiRPS = 100
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()

	e.GET("/manage/health", h.Health)

	// the three front-end routes all serve the same fixed document
	for _, path := range []string{"/", "/index", "/frontend"} {
		e.GET(path, h.Index)
	}
	e.Static("/public", h.cfg.StaticDir)

	mws := []echo.MiddlewareFunc{
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
	}
	if h.cfg.RateLimitEnabled {
		mws = append(mws, md.NewRateLimiter(apiRPS))
	}
	api := e.Group("/api", mws...)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.CreateBook)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.DeleteBook)

	if h.cfg.AuthEnabled {
		api.POST("/users/register", h.Register)
		api.POST("/users/login", h.Login)
	}

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Index(c echo.Context) error {
	return c.File(filepath.Join(h.cfg.StaticDir, "index.html"))
}
