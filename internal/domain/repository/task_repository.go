// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"taskman/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByID retrieves a single task by its unique ID, regardless of owner.
	// Ownership checks belong to the usecase layer so that existence and
	// ownership failures stay distinguishable.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// ListByOwner retrieves the tasks owned by the given user in store-native
	// (id) order, offset by skip and capped at limit.
	ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update persists the full state of an existing task entity.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task by its ID. Returns ErrTaskNotFound when no row
	// was deleted, so a repeated delete fails rather than silently succeeding.
	Delete(ctx context.Context, id int64) error
}
