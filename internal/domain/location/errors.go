package location

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var ErrLocationNotFound = fmt.Errorf("location %w", appErrors.ErrNotFound)
