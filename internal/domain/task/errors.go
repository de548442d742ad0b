package task

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var (
	ErrTaskNotFound            = fmt.Errorf("task %w", appErrors.ErrNotFound)
	ErrInvalidStatusTransition = fmt.Errorf("invalid status transition: %w", appErrors.ErrInvalidState)
)
