// Package entity contains the core business objects of the project.
package entity

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	// TaskPriorityLow indicates a task that can wait.
	TaskPriorityLow TaskPriority = "low"
	// TaskPriorityMedium indicates a task of normal urgency.
	TaskPriorityMedium TaskPriority = "medium"
	// TaskPriorityHigh indicates a task that should be done first.
	TaskPriorityHigh TaskPriority = "high"
)

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// IsValid checks if the TaskPriority is a valid value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}
