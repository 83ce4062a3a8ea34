package core

import "time"

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Status      TaskStatus `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at"` // nil unless status is completed
}

// ListFilter narrows and orders a task listing. The zero value is the
// legacy contract: every status, oldest first, at most DefaultListLimit
// rows.
type ListFilter struct {
	Status      *TaskStatus
	Limit       int
	NewestFirst bool
}

const (
	DefaultListLimit = 6
	MaxListLimit     = 100
)
