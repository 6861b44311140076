package telegram

import (
	"errors"

	"nl-task-parser/internal/task"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrEmptyInput):
		return "Send me a task line, e.g. `Call mom tomorrow high priority`."
	case errors.Is(err, task.ErrInputTooLong):
		return "That message is too long for one task. Please shorten it."
	default:
		return "Something went wrong while parsing your task. Please try again."
	}
}
