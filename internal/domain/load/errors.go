package load

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var (
	ErrLoadNotFound      = fmt.Errorf("load %w", appErrors.ErrNotFound)
	ErrLoadAlreadyExists = fmt.Errorf("load id %w", appErrors.ErrConflict)
)
