package tasks

import (
	"errors"
	"fmt"

	domain "github.com/example/task-tracker/domain/task"
	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when a task does not exist or belongs to
// another user. The two cases are deliberately indistinguishable.
var ErrTaskNotFound = errors.New("task not found")

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task to the database.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindAllByOwner retrieves all tasks owned by the given user, in
// primary-key order.
func (r *Repository) FindAllByOwner(userID uint) ([]*domain.Task, error) {
	var found []*domain.Task
	if err := r.db.Find(&found, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return found, nil
}

// FindOwned retrieves a task by id scoped to its owner. The ownership
// filter is part of the lookup itself.
func (r *Repository) FindOwned(id, userID uint) (*domain.Task, error) {
	var found domain.Task
	if err := r.db.First(&found, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &found, nil
}

// Update writes the task's title and completion flag, scoped to the
// owner. Updates uses a map so a false completion flag is not skipped
// as a zero value.
func (r *Repository) Update(task *domain.Task) error {
	result := r.db.Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":     task.Title,
			"completed": task.Completed,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete permanently removes a task, scoped to its owner.
func (r *Repository) Delete(id, userID uint) error {
	result := r.db.Delete(&domain.Task{}, "id = ? AND user_id = ?", id, userID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
