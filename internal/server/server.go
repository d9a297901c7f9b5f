// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"adboard/internal/config"
	"adboard/internal/database"
	"adboard/internal/middleware"
	"adboard/internal/models"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	return &Server{
		config: cfg,
		db:     db,
	}, nil
}

// NewServerWithDB creates a server on an already-open database handle.
// Used by tests, which bring their own migrated database.
func NewServerWithDB(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{config: cfg, db: db}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// OpenTelemetry span per request
	app.Use(middleware.TracingMiddleware())

	// Prometheus HTTP metrics
	prom := fiberprometheus.New("adboard")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/healthz", s.HealthCheck)

	// Id segments are constrained to integers, so non-numeric ids never
	// reach a handler. Every entity route runs inside one unit of work.
	users := app.Group("/users", s.RequestUnitOfWork())
	users.Post("/", s.CreateUser)
	users.Get("/:id<int>", s.GetUser)
	users.Patch("/:id<int>", s.UpdateUser)
	users.Delete("/:id<int>", s.DeleteUser)

	advertisements := app.Group("/advertisements", s.RequestUnitOfWork())
	advertisements.Post("/", s.CreateAdvertisement)
	advertisements.Get("/:id<int>", s.GetAdvertisement)
	advertisements.Patch("/:id<int>", s.UpdateAdvertisement)
	advertisements.Delete("/:id<int>", s.DeleteAdvertisement)
}

// RequestUnitOfWork opens one unit of work per request, attaches it to the
// request context and guarantees closure after the handler returns. Anything
// a handler did not commit is rolled back.
func (s *Server) RequestUnitOfWork() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uow, err := database.Begin(s.db)
		if err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		defer uow.Close()

		c.Locals(unitOfWorkKey, uow)
		return c.Next()
	}
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	overallStatus := "healthy"
	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		overallStatus = "unhealthy"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server resources.
func (s *Server) Shutdown(_ context.Context) error {
	return database.Close(s.db)
}
