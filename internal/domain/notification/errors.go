package notification

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var ErrNotificationNotFound = fmt.Errorf("notification %w", appErrors.ErrNotFound)
