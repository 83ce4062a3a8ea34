package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"task-tracker/core"
)

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, dsn string) (*DB, error) {
	conn, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Error("connection problem", "error", err)
		return nil, err
	}
	return &DB{log: log, conn: conn}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

func (db *DB) CreateTask(ctx context.Context, title, description string) (core.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" || description == "" {
		return core.Task{}, core.ErrTaskInvalidArgs
	}

	const q = `
		INSERT INTO tasks(title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, status, created_at, completed_at;
	`

	var t core.Task
	if err := db.conn.GetContext(ctx, &t, q, title, description); err != nil {
		if isCheckViolation(err) {
			return core.Task{}, core.ErrTaskInvalidArgs
		}
		db.log.Error("insert task failed", "error", err, "query", q, "title", title)
		return core.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

func (db *DB) ListTasks(ctx context.Context, f core.ListFilter) ([]core.Task, error) {
	if f.Limit <= 0 {
		f.Limit = core.DefaultListLimit
	}
	if f.Limit > core.MaxListLimit {
		f.Limit = core.MaxListLimit
	}

	var (
		sb   strings.Builder
		args []any
		n    = 1
	)

	sb.WriteString(`SELECT id, title, description, status, created_at, completed_at FROM tasks`)

	if f.Status != nil {
		args = append(args, string(*f.Status))
		sb.WriteString(fmt.Sprintf(" WHERE status = $%d", n))
		n++
	}

	order := "ASC"
	if f.NewestFirst {
		order = "DESC"
	}
	args = append(args, f.Limit)
	sb.WriteString(fmt.Sprintf(" ORDER BY created_at %s LIMIT $%d", order, n))

	out := []core.Task{}
	if err := db.conn.SelectContext(ctx, &out, sb.String(), args...); err != nil {
		db.log.Error("list tasks failed", "error", err, "query", sb.String(), "args", args)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return out, nil
}

// UpdateTaskStatus flips the status in a single statement; completed_at
// is set iff the new status is completed, cleared otherwise.
func (db *DB) UpdateTaskStatus(ctx context.Context, id int64, status core.TaskStatus) (core.Task, error) {
	const q = `
		UPDATE tasks
		SET status = $2::text,
		    completed_at = CASE WHEN $2::text = 'completed' THEN now() ELSE NULL END
		WHERE id = $1
		RETURNING id, title, description, status, created_at, completed_at;
	`

	var t core.Task
	if err := db.conn.GetContext(ctx, &t, q, id, string(status)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Task{}, fmt.Errorf("%w: id %d", core.ErrTaskNotFound, id)
		}
		if isCheckViolation(err) {
			return core.Task{}, core.ErrTaskInvalidArgs
		}
		db.log.Error("update task status failed", "error", err, "query", q, "id", id, "status", status)
		return core.Task{}, fmt.Errorf("update task status: %w", err)
	}
	return t, nil
}

func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	const q = `DELETE FROM tasks WHERE id = $1`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		db.log.Error("delete task failed", "error", err, "query", q, "id", id)
		return fmt.Errorf("delete task: %w", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return fmt.Errorf("%w: id %d", core.ErrTaskNotFound, id)
	}
	return nil
}

// pg helpers

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
