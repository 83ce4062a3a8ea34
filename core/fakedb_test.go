package core_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"task-tracker/core"
)

var errStoreDown = errors.New("store down")

type fakeDB struct {
	mu sync.RWMutex

	nextID int64
	base   time.Time
	tasks  map[int64]core.Task

	failing bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		nextID: 1,
		base:   time.Now(),
		tasks:  make(map[int64]core.Task),
	}
}

func cloneTask(t core.Task) core.Task {
	out := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		out.CompletedAt = &at
	}
	return out
}

func (db *fakeDB) Ping(context.Context) error {
	if db.failing {
		return errStoreDown
	}
	return nil
}

func (db *fakeDB) CreateTask(_ context.Context, title, description string) (core.Task, error) {
	if db.failing {
		return core.Task{}, errStoreDown
	}

	title = strings.TrimSpace(title)
	if title == "" || description == "" {
		return core.Task{}, core.ErrTaskInvalidArgs
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	id := db.nextID
	db.nextID++

	task := core.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      core.StatusPending,
		// distinct, strictly increasing creation times
		CreatedAt: db.base.Add(time.Duration(id) * time.Millisecond),
	}
	db.tasks[id] = task

	return cloneTask(task), nil
}

func (db *fakeDB) ListTasks(_ context.Context, f core.ListFilter) ([]core.Task, error) {
	if db.failing {
		return nil, errStoreDown
	}

	if f.Limit <= 0 {
		f.Limit = core.DefaultListLimit
	}
	if f.Limit > core.MaxListLimit {
		f.Limit = core.MaxListLimit
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	out := []core.Task{}
	for _, task := range db.tasks {
		if f.Status != nil && task.Status != *f.Status {
			continue
		}
		out = append(out, cloneTask(task))
	}

	sort.Slice(out, func(i, j int) bool {
		if f.NewestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (db *fakeDB) UpdateTaskStatus(_ context.Context, id int64, status core.TaskStatus) (core.Task, error) {
	if db.failing {
		return core.Task{}, errStoreDown
	}
	if !status.Valid() {
		return core.Task{}, core.ErrTaskInvalidArgs
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	task, ok := db.tasks[id]
	if !ok {
		return core.Task{}, core.ErrTaskNotFound
	}

	task.Status = status
	if status == core.StatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	db.tasks[id] = task

	return cloneTask(task), nil
}

func (db *fakeDB) DeleteTask(_ context.Context, id int64) error {
	if db.failing {
		return errStoreDown
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.tasks[id]; !ok {
		return core.ErrTaskNotFound
	}
	delete(db.tasks, id)
	return nil
}

func (db *fakeDB) taskCount() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.tasks)
}

func (db *fakeDB) get(id int64) (core.Task, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	task, ok := db.tasks[id]
	return cloneTask(task), ok
}
