package profile

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var (
	ErrProfileNotFound = fmt.Errorf("profile %w", appErrors.ErrNotFound)
	ErrProfileExists   = fmt.Errorf("profile %w", appErrors.ErrConflict)
)
