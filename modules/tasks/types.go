package tasks

// TaskResponse is the wire shape for a task. The owner id is never
// serialized; ownership is implicit in the requesting identity.
type TaskResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ListTasksRequest is the request for listing the caller's tasks.
type ListTasksRequest struct {
	Username string `json:"username"`
}

// ListTasksResponse is the response containing the caller's tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Username string `json:"username"`
	Title    string `json:"title"`
}

// UpdateTaskRequest is the request for updating a task. Absent fields
// retain their prior values.
type UpdateTaskRequest struct {
	Username  string  `json:"username"`
	ID        uint    `json:"id"`
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	Username string `json:"username"`
	ID       uint   `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}
