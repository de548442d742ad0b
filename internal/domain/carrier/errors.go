package carrier

import (
	"fmt"

	appErrors "freight-tms/pkg/errors"
)

var ErrCarrierNotFound = fmt.Errorf("carrier %w", appErrors.ErrNotFound)
