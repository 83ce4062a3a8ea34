package core

import (
	"context"
	"strings"
)

// Service validates input at the boundary and delegates persistence to
// the DB port. It holds no state of its own.
type Service struct {
	db DB
}

func NewService(db DB) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Service) CreateTask(ctx context.Context, title, description string) (Task, error) {
	if strings.TrimSpace(title) == "" || description == "" {
		return Task{}, ErrTaskInvalidArgs
	}
	return s.db.CreateTask(ctx, strings.TrimSpace(title), description)
}

func (s *Service) ListTasks(ctx context.Context, f ListFilter) ([]Task, error) {
	if f.Limit < 0 {
		return nil, ErrTaskInvalidArgs
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, ErrTaskInvalidArgs
	}
	return s.db.ListTasks(ctx, f)
}

func (s *Service) UpdateTaskStatus(ctx context.Context, id int64, status TaskStatus) (Task, error) {
	if id <= 0 {
		return Task{}, ErrTaskInvalidArgs
	}
	if !status.Valid() {
		return Task{}, ErrTaskInvalidArgs
	}
	return s.db.UpdateTaskStatus(ctx, id, status)
}

func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTaskInvalidArgs
	}
	return s.db.DeleteTask(ctx, id)
}
