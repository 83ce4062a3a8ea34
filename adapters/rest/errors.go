package rest

import (
	"errors"
	"net/http"

	"task-tracker/core"
	"task-tracker/pkg/res"
)

// WriteErr maps service errors onto HTTP statuses. Store failures stay
// a generic 500; their message is attached only when exposeInternal is
// set (development configuration).
func WriteErr(w http.ResponseWriter, err error, exposeInternal bool) {
	switch {
	case errors.Is(err, core.ErrTaskInvalidArgs):
		res.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrTaskNotFound):
		res.Error(w, err.Error(), http.StatusNotFound)
	default:
		if exposeInternal {
			res.ErrorDetails(w, "internal error", err.Error(), http.StatusInternalServerError)
			return
		}
		res.Error(w, "internal error", http.StatusInternalServerError)
	}
}
