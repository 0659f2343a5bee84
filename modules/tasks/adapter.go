package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TasksPort defines the interface other modules use to reach the task
// service.
type TasksPort interface {
	List(ctx context.Context, username string) ([]TaskResponse, error)
	Create(ctx context.Context, username, title string) (TaskResponse, error)
	Update(ctx context.Context, username string, id uint, title *string, completed *bool) (TaskResponse, error)
	Delete(ctx context.Context, username string, id uint) error
}

// TasksAdapter implements TasksPort using the service container.
type TasksAdapter struct {
	container mono.ServiceContainer
}

// NewTasksAdapter creates a new TasksAdapter.
func NewTasksAdapter(container mono.ServiceContainer) *TasksAdapter {
	return &TasksAdapter{
		container: container,
	}
}

// List returns all tasks owned by the identity.
func (a *TasksAdapter) List(ctx context.Context, username string) ([]TaskResponse, error) {
	req := ListTasksRequest{Username: username}
	var resp ListTasksResponse

	if err := a.call(ctx, "list", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// Create creates a task owned by the identity.
func (a *TasksAdapter) Create(ctx context.Context, username, title string) (TaskResponse, error) {
	req := CreateTaskRequest{Username: username, Title: title}
	var resp TaskResponse

	if err := a.call(ctx, "create", &req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// Update applies a partial patch to a task owned by the identity.
func (a *TasksAdapter) Update(ctx context.Context, username string, id uint, title *string, completed *bool) (TaskResponse, error) {
	req := UpdateTaskRequest{Username: username, ID: id, Title: title, Completed: completed}
	var resp TaskResponse

	if err := a.call(ctx, "update", &req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// Delete permanently removes a task owned by the identity.
func (a *TasksAdapter) Delete(ctx context.Context, username string, id uint) error {
	req := DeleteTaskRequest{Username: username, ID: id}
	var resp DeleteTaskResponse

	return a.call(ctx, "delete", &req, &resp)
}

// call invokes a tasks service and re-establishes the package sentinel
// errors from the error text, since error values do not survive the
// service container.
func (a *TasksAdapter) call(ctx context.Context, service string, req, resp any) error {
	err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	)
	if err == nil {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, ErrTaskNotFound.Error()):
		return ErrTaskNotFound
	case strings.Contains(msg, ErrTitleRequired.Error()):
		return ErrTitleRequired
	case strings.Contains(msg, ErrUnknownUser.Error()):
		return ErrUnknownUser
	default:
		return fmt.Errorf("%s request failed: %w", service, err)
	}
}

// Compile-time interface check.
var _ TasksPort = (*TasksAdapter)(nil)
