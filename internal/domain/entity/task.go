// Package entity contains the core business objects of the project.
package entity

import "time"

// Limits for task fields, enforced by the task usecase and mirrored by the
// database column sizes.
const (
	TaskTitleMaxLen       = 255
	TaskDescriptionMaxLen = 1000
)

// Task represents a single to-do item belonging to one user.
// OwnerID is assigned from the authenticated identity at creation and is
// never changed afterwards.
type Task struct {
	ID          int64        // Auto-incrementing numeric identifier for the task.
	Title       string       // Required, 1 to 255 characters.
	Description string       // Optional, up to 1000 characters.
	Status      TaskStatus   // Defaults to TaskStatusPending.
	Priority    TaskPriority // Defaults to TaskPriorityMedium.
	DueDate     *time.Time   // Optional deadline.
	OwnerID     int64        // The user this task belongs to. Immutable after creation.
	CreatedAt   time.Time    // Set once at creation.
	UpdatedAt   time.Time    // Refreshed on every successful mutation.
}
