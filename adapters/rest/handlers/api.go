package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"task-tracker/core"
)

func Register(mux *http.ServeMux, log *slog.Logger, svc *core.Service, timeout time.Duration, exposeErrors bool) {
	// ping
	mux.Handle("GET /api/ping", NewPingHandler(log, svc, timeout))

	// tasks
	mux.Handle("GET /api/task", NewListTasksHandler(log, svc, timeout, exposeErrors))
	mux.Handle("POST /api/task", NewCreateTaskHandler(log, svc, timeout, exposeErrors))
	mux.Handle("PUT /api/task/{id}", NewUpdateTaskHandler(log, svc, timeout, exposeErrors))
	mux.Handle("DELETE /api/task/{id}", NewDeleteTaskHandler(log, svc, timeout, exposeErrors))

	// embedded web client
	mux.Handle("GET /", NewWebHandler())
}
