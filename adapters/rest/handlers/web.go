package handlers

import (
	"net/http"

	"task-tracker/web"
)

// NewWebHandler serves the embedded browser client.
func NewWebHandler() http.Handler {
	return http.FileServerFS(web.Assets)
}
