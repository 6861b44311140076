package http

import (
	"errors"
	"net/http"

	"nl-task-parser/internal/task"
	"nl-task-parser/pkg/response"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return response.NewHTTPError(http.StatusBadRequest, "text is empty")
	case errors.Is(err, task.ErrInputTooLong):
		return response.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, task.ErrInvalidConfig):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return &response.HTTPError{
			Status:  http.StatusInternalServerError,
			Code:    response.InternalServerErrorCode,
			Message: response.DefaultErrorMessage,
		}
	}
}
