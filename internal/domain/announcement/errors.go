package announcement

import "errors"

var (
	ErrRecipientNotFound = errors.New("recipient user not found")
)
