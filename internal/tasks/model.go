package tasks

import "time"

// Task is a unit of work owned by exactly one user. The owner reference is
// set at creation from the authenticated identity and never changes.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
