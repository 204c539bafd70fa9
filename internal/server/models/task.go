package models

import "time"

// Priority is the task urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a task record owned by a single user. UserID is set at creation
// and never changes.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	UserID      int64      `json:"userId"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskDraft carries the caller-supplied fields for a new task. Identifier,
// owner, defaults, and timestamps are assigned by the store.
type TaskDraft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
}

// TaskPatch carries the mutable fields for a partial update. Nil fields are
// left untouched. Identifier, owner, and creation timestamp have no patch
// fields and therefore cannot be overwritten by any payload.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     *time.Time
}

// TaskFilter narrows task listings. Unset fields impose no constraint.
// Search matches case-insensitively against title or description.
type TaskFilter struct {
	Completed *bool
	Priority  *Priority
	Search    string
}
