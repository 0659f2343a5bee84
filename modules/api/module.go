package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/task-tracker/config"
	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/tasks"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the HTTP boundary. It maps each route to exactly one
// service call through the auth and tasks ports.
type APIModule struct {
	cfg         config.Config
	app         *fiber.App
	authAdapter auth.AuthPort
	taskAdapter tasks.TasksPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule(cfg config.Config) *APIModule {
	return &APIModule{
		cfg: cfg,
	}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"auth", "tasks"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authAdapter = auth.NewAuthAdapter(container)
	case "tasks":
		m.taskAdapter = tasks.NewTasksAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.authAdapter == nil {
		return fmt.Errorf("auth dependency not set")
	}
	if m.taskAdapter == nil {
		return fmt.Errorf("tasks dependency not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New(m.corsConfig()))

	m.setupRoutes()

	go func() {
		if err := m.app.Listen(m.cfg.HTTPAddr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on %s", m.cfg.HTTPAddr)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.cfg.HTTPAddr,
		},
	}
}

// corsConfig builds the CORS policy for the active deployment profile.
// Production restricts callers to the configured origins; development
// allows any origin.
func (m *APIModule) corsConfig() cors.Config {
	if m.cfg.IsProduction() && m.cfg.AllowedOrigins != "" {
		return cors.Config{AllowOrigins: m.cfg.AllowedOrigins}
	}
	return cors.ConfigDefault
}

// setupRoutes configures all API routes.
func (m *APIModule) setupRoutes() {
	handlers := NewHandlers(m.authAdapter, m.taskAdapter)

	// Health check endpoint
	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"module": "api",
		})
	})

	// Public routes
	m.app.Post("/register", handlers.Register)
	m.app.Post("/login", handlers.Login)

	// Protected routes (require authentication)
	protected := m.app.Group("/tasks")
	protected.Use(AuthMiddleware(m.authAdapter))
	protected.Get("/", handlers.ListTasks)
	protected.Post("/", handlers.CreateTask)
	protected.Put("/:id", handlers.UpdateTask)
	protected.Delete("/:id", handlers.DeleteTask)
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(MessageResponse{
		Msg: message,
	})
}
