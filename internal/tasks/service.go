package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/shared"
)

// Service wraps task business rules. Every operation takes the owner id
// extracted from the verified token; client-supplied owner fields do not
// exist in the request surface.
type Service struct {
	repo Repository
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the caller's tasks, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]Task, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Create stores a new incomplete task for the caller.
func (s *Service) Create(ctx context.Context, userID int64, req CreateTaskRequest) (Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return Task{}, fmt.Errorf("%w: title must not be empty", shared.ErrValidation)
	}
	return s.repo.Create(ctx, userID, req.Title)
}

// Update applies a partial update to the caller's task.
func (s *Service) Update(ctx context.Context, id, userID int64, req UpdateTaskRequest) (Task, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return Task{}, fmt.Errorf("%w: title must not be empty", shared.ErrValidation)
	}
	return s.repo.Update(ctx, id, userID, req)
}

// Delete permanently removes the caller's task.
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
