package task

// Task is a single to-do item owned by exactly one user. Ownership is
// enforced by scoping every lookup to both the task id and the owner's
// user id, so a foreign task is indistinguishable from a missing one.
type Task struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:100;not null" json:"title"`
	Completed bool   `gorm:"not null;default:false" json:"completed"`
	UserID    uint   `gorm:"index;not null" json:"-"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
