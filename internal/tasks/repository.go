package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/taskdeck/internal/shared"
)

// Repository defines persistence operations for tasks. Every read and
// mutation is filtered by id AND owner in a single statement, so "absent"
// and "not owned" are indistinguishable and there is no window between the
// ownership check and the write.
type Repository interface {
	ListByOwner(ctx context.Context, userID int64) ([]Task, error)
	Create(ctx context.Context, userID int64, title string) (Task, error)
	Update(ctx context.Context, id, userID int64, patch UpdateTaskRequest) (Task, error)
	Delete(ctx context.Context, id, userID int64) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// ListByOwner returns the owner's tasks, newest first.
func (r *PGRepository) ListByOwner(ctx context.Context, userID int64) ([]Task, error) {
	const query = `SELECT id, title, completed, user_id, created_at, updated_at
		FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Task{}
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// Create inserts a task owned by userID.
func (r *PGRepository) Create(ctx context.Context, userID int64, title string) (Task, error) {
	const query = `INSERT INTO tasks (title, completed, user_id, created_at, updated_at)
		VALUES ($1, FALSE, $2, $3, $3)
		RETURNING id, title, completed, user_id, created_at, updated_at`

	now := time.Now().UTC()
	var t Task
	err := r.pool.QueryRow(ctx, query, title, userID, now).
		Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Update applies the non-nil patch fields to the task matching id and
// owner. COALESCE keeps omitted fields intact.
func (r *PGRepository) Update(ctx context.Context, id, userID int64, patch UpdateTaskRequest) (Task, error) {
	const query = `UPDATE tasks
		SET title = COALESCE($3, title),
		    completed = COALESCE($4, completed),
		    updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, completed, user_id, created_at, updated_at`

	var t Task
	err := r.pool.QueryRow(ctx, query, id, userID, patch.Title, patch.Completed, time.Now().UTC()).
		Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Task{}, shared.ErrNotFound
		}
		return Task{}, err
	}
	return t, nil
}

// Delete permanently removes the task matching id and owner.
func (r *PGRepository) Delete(ctx context.Context, id, userID int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
