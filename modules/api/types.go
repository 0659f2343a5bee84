package api

// CredentialsRequest carries a username/password pair for the register
// and login routes.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Absent fields retain
// their prior values.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is the generic `{msg}` envelope used for both
// successes that carry no entity and every error response.
type MessageResponse struct {
	Msg string `json:"msg"`
}
