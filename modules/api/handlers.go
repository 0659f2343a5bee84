package api

import (
	"errors"
	"log"
	"strings"

	domain "github.com/example/task-tracker/domain/user"
	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/tasks"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	auth  auth.AuthPort
	tasks tasks.TasksPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.AuthPort, tasksPort tasks.TasksPort) *Handlers {
	return &Handlers{
		auth:  authPort,
		tasks: tasksPort,
	}
}

// Register handles POST /register.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Username and password are required",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Username and password are required",
		})
	}

	if err := h.auth.Register(c.UserContext(), req.Username, req.Password); err != nil {
		return h.registerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(MessageResponse{
		Msg: "User created successfully",
	})
}

// Login handles POST /login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
			Msg: "Invalid username or password",
		})
	}

	token, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		// One generic message regardless of whether the username exists.
		return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
			Msg: "Invalid username or password",
		})
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken: token,
	})
}

// ListTasks handles GET /tasks.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	list, err := h.tasks.List(c.UserContext(), identity.Username)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

// CreateTask handles POST /tasks.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Title is required",
		})
	}

	created, err := h.tasks.Create(c.UserContext(), identity.Username, req.Title)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateTask handles PUT /tasks/:id.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := taskID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(MessageResponse{
			Msg: "Task not found",
		})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Invalid request body",
		})
	}

	updated, err := h.tasks.Update(c.UserContext(), identity.Username, id, req.Title, req.Completed)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteTask handles DELETE /tasks/:id.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	identity, ok := requestIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	id, err := taskID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(MessageResponse{
			Msg: "Task not found",
		})
	}

	if err := h.tasks.Delete(c.UserContext(), identity.Username, id); err != nil {
		return h.taskError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// requestIdentity extracts the identity stored by the auth middleware.
func requestIdentity(c *fiber.Ctx) (*domain.Identity, bool) {
	identity, ok := c.Locals(IdentityContextKey).(*domain.Identity)
	return identity, ok
}

// unauthenticated is the response for a request that reached a
// protected handler without an identity in its context.
func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
		Msg: "User not authenticated",
	})
}

// taskID parses the :id route parameter. A non-numeric id can never
// name an existing task, so callers map the failure to 404.
func taskID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid task id")
	}
	return uint(id), nil
}

// registerError maps registration failures onto the HTTP surface. Error
// values from the auth module arrive through the service container, so
// matching happens on the error text.
func (h *Handlers) registerError(c *fiber.Ctx, err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, auth.ErrUsernameTaken.Error()):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Username already exists",
		})
	case strings.Contains(msg, auth.ErrMissingCredentials.Error()):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Username and password are required",
		})
	default:
		log.Printf("[api] register error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
			Msg: "An error occurred while registering the user",
		})
	}
}

// taskError maps task service failures onto the HTTP surface.
func (h *Handlers) taskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tasks.ErrTaskNotFound):
		return c.Status(fiber.StatusNotFound).JSON(MessageResponse{
			Msg: "Task not found",
		})
	case errors.Is(err, tasks.ErrTitleRequired):
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{
			Msg: "Title is required",
		})
	case errors.Is(err, tasks.ErrUnknownUser):
		return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
			Msg: "User not authenticated",
		})
	default:
		log.Printf("[api] task error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{
			Msg: "An internal error occurred",
		})
	}
}
