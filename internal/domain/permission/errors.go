package permission

import "errors"

// Permission domain errors
var (
	ErrPermissionNotFound = errors.New("permission request not found")
	ErrAlreadyDecided     = errors.New("permission request has already been decided")
)
