package client

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var ErrClientNotFound = fmt.Errorf("client %w", appErrors.ErrNotFound)
