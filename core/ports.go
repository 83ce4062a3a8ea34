package core

import "context"

// DB is the persistence port. The store assigns id and created_at on
// insert and owns the completed_at transition on status updates.
type DB interface {
	Ping(ctx context.Context) error

	CreateTask(ctx context.Context, title, description string) (Task, error)
	ListTasks(ctx context.Context, f ListFilter) ([]Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status TaskStatus) (Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
