package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/99minutos/todo-service/docs"
	"github.com/99minutos/todo-service/internal/api/handler"
	"github.com/99minutos/todo-service/internal/api/middleware"
	"github.com/99minutos/todo-service/internal/core/ports"
)

// Deps holds everything NewRouter wires together. Mongo and Redis are only
// used by the readiness probe; a nil Limiter disables auth rate limiting.
type Deps struct {
	BasePath    string
	ExposeCause bool
	Log         zerolog.Logger

	AuthService ports.AuthService
	TodoService ports.TodoService
	Tokens      ports.TokenService
	Users       ports.UserRepository
	ValidID     func(string) bool
	Limiter     middleware.Limiter

	Mongo *mongo.Database
	Redis *redis.Client

	// Registerer and Gatherer default to the Prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.ExposeCause)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "todo",
		Registerer: d.Registerer,
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	e.GET("/health", handler.NewHealthHandler().Liveness) // liveness  – is the process alive?
	if d.Mongo != nil {
		e.GET("/health/ready", handler.NewHealthDependenciesHandler(d.Mongo, d.Redis).Readiness) // readiness – are dependencies up?
	}

	base := d.BasePath
	if base == "/" {
		base = ""
	}
	api := e.Group(base)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	auth := api.Group("/auth")
	if d.Limiter != nil {
		auth.Use(middleware.RateLimit(d.Limiter, "auth", d.Log))
	}
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- Todo routes (bearer token required) ---
	todoHandler := handler.NewTodoHandler(d.TodoService, d.ValidID)
	todos := api.Group("/todo", middleware.Auth(d.Tokens, d.Users, d.Log))
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.GET("/:id", todoHandler.Get)
	todos.PUT("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	return e
}
