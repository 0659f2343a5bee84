package tasks

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/task-tracker/domain/task"
	userdomain "github.com/example/task-tracker/domain/user"
	"github.com/go-monolith/mono"
	"gorm.io/gorm"
)

var (
	// ErrTitleRequired is returned when a task title is missing or empty.
	ErrTitleRequired = errors.New("title is required")
	// ErrUnknownUser is returned when an identity no longer maps to a
	// stored user, e.g. a valid token for a removed account.
	ErrUnknownUser = errors.New("unknown user")
)

// UserResolver maps an identity's username to the stored user record.
// The auth module's adapter satisfies this.
type UserResolver interface {
	ResolveUser(ctx context.Context, username string) (*userdomain.User, error)
}

// resolveOwner turns the identity carried by a request into the owning
// user id. Every task operation starts here.
func (m *TasksModule) resolveOwner(ctx context.Context, username string) (uint, error) {
	if username == "" {
		return 0, ErrUnknownUser
	}
	user, err := m.users.ResolveUser(ctx, username)
	if err != nil {
		return 0, ErrUnknownUser
	}
	return user.ID, nil
}

// listTasks handles the tasks.list service request.
func (m *TasksModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	owner, err := m.resolveOwner(ctx, req.Username)
	if err != nil {
		return ListTasksResponse{}, err
	}

	found, err := m.repo.FindAllByOwner(owner)
	if err != nil {
		return ListTasksResponse{}, err
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(found)),
		Total: len(found),
	}
	for _, t := range found {
		response.Tasks = append(response.Tasks, toTaskResponse(t))
	}
	return response, nil
}

// createTask handles the tasks.create service request.
func (m *TasksModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	owner, err := m.resolveOwner(ctx, req.Username)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title == "" {
		return TaskResponse{}, ErrTitleRequired
	}

	created := &domain.Task{
		Title:  req.Title,
		UserID: owner,
	}
	if err := m.repo.Create(created); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	return toTaskResponse(created), nil
}

// updateTask handles the tasks.update service request. The read and the
// write run in a single transaction; an empty patch is a successful
// no-op that still persists the unchanged row.
func (m *TasksModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	owner, err := m.resolveOwner(ctx, req.Username)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil && *req.Title == "" {
		return TaskResponse{}, ErrTitleRequired
	}

	var updated *domain.Task
	err = m.db.Transaction(func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		found, err := repo.FindOwned(req.ID, owner)
		if err != nil {
			return err
		}

		if req.Title != nil {
			found.Title = *req.Title
		}
		if req.Completed != nil {
			found.Completed = *req.Completed
		}

		if err := repo.Update(found); err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		return TaskResponse{}, err
	}

	return toTaskResponse(updated), nil
}

// deleteTask handles the tasks.delete service request.
func (m *TasksModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	owner, err := m.resolveOwner(ctx, req.Username)
	if err != nil {
		return DeleteTaskResponse{}, err
	}

	if err := m.repo.Delete(req.ID, owner); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}

	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

// toTaskResponse converts a Task entity to its wire shape.
func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}
