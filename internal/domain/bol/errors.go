package bol

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var ErrBOLNotFound = fmt.Errorf("bill of lading %w", appErrors.ErrNotFound)
