// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"taskman/internal/domain/entity"
)

// --- Input DTOs ---

// CreateTaskInput defines the data accepted when creating a task.
// Status and Priority fall back to their defaults when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// UpdateTaskInput is a sparse field set: only non-nil fields are applied.
// Owner and creation timestamp are never part of an update.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
}

// ListTasksInput carries the pagination window for a task listing.
type ListTasksInput struct {
	Skip  int
	Limit int
}

// TaskUsecase defines the interface for task-related business operations.
// Every operation receives the acting identity explicitly; no operation
// infers the caller from ambient state.
type TaskUsecase interface {
	Create(ctx context.Context, identity *entity.User, input *CreateTaskInput) (*entity.Task, error)
	List(ctx context.Context, identity *entity.User, input *ListTasksInput) ([]*entity.Task, error)
	Get(ctx context.Context, identity *entity.User, taskID int64) (*entity.Task, error)
	Update(ctx context.Context, identity *entity.User, taskID int64, input *UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, identity *entity.User, taskID int64) error
}
