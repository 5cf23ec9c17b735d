package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username is already in use")
	ErrInvalidRole      = errors.New("role must be admin or user")
	ErrInvalidPassword  = errors.New("current password is incorrect")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrAdminUndeletable = errors.New("the admin account cannot be deleted")
)
