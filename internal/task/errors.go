package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrInputTooLong  = errors.New("input text is too long")
	ErrInvalidConfig = errors.New("invalid vocabulary config")
)
