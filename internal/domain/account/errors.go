package account

import (
	appErrors "freight-tms/pkg/errors"
)

var (
	ErrAccountNotFound      = appErrors.ErrAccountNotFound
	ErrAccountAlreadyExists = appErrors.ErrAccountAlreadyExists
	ErrTokenInvalid         = appErrors.ErrInvalidToken
)
