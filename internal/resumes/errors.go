package resumes

import "errors"

var (
	ErrNotFound          = errors.New("resume not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)
