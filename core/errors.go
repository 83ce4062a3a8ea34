package core

import "errors"

var (
	ErrTaskInvalidArgs = errors.New("task invalid args")
	ErrTaskNotFound    = errors.New("task not found")
)
