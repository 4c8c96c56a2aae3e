package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user with this email or employee ID already exists")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminPrivilegeRequired = errors.New("you do not have permission to perform this action")
	ErrCannotDeleteSelf       = errors.New("you cannot delete yourself")
)
