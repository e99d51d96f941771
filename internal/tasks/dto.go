package tasks

// CreateTaskRequest is the POST /tasks payload.
type CreateTaskRequest struct {
	Title string `json:"title" validate:"required"`
}

// UpdateTaskRequest is the PATCH /tasks/{id} payload. Nil fields are left
// untouched; a present-but-empty title is a validation error.
type UpdateTaskRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Completed *bool   `json:"completed"`
}
